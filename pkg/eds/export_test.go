package eds

var DrawCol = drawCol
