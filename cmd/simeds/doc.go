// 18 Oct 2026

/*
Simeds makes test data for programs which work on elastic degenerate
strings. It takes a genome, or makes a random one, scatters
non-overlapping degenerate regions over it and writes the result as a
single line like
	ACG{T,GA,}CCT{A,C}G...
Usage:
	simeds [options] [n]
n is the length of the random genome. It is not needed if -f is given.

Flags:
	-f file
		read the genome from the first sequence of a fasta file
	-d percent
		number of degenerate regions as a percentage of the genome length
	-s num
		variant counts are drawn from 1 to num-1
	-l num
		max length of a degenerate region
	-e
		elastic. An alternative may lose symbols, or be empty.
	-g
		do nothing but write the genome in fasta format
	-m num
		give up placing regions after this many attempts
	-t duration
		give up after this long, like 30s or 5m
	-r seed
		random number seed
	-o file
		output file. The default is stdout.
	-z
		snappy compress the output
	-c file
		toml file with settings. Flags on the command line win.
	-v
		verbose. Log every region and the symbol composition.
	-p
		write a cpu profile

Diagnostics go to stderr. If anything goes wrong, nothing is written
to the output.
*/
package main
