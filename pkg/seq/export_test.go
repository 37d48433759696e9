package seq

var SetFastaRdSize = setFastaRdSize

func GetRdSize() int { return rdsize }
