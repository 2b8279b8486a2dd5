// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tert holds the human TERT locus (GRCh38) used as a reference
// case in tests.
package tert

// Gene is the HGNC symbol of the locus.
const Gene = "TERT"

// LeftArm is the 500 bases upstream of the promoter.
const LeftArm = "" +
	"TAAAATTGTGTTTTCTATGTTGGCTTCTCTGCAGAGAACCAGTGTAAGCTACAACTTAAC" +
	"TTTTGTTGGAACAAATTTTCCAAACCGCCCCTTTGCCCTAGTGGCAGAGACAATTCACAA" +
	"ACACAGCCCTTTAAAAAGGCTTAGGGATCACTAAGGGGATTTCTAGAAGAGCGACCTGTA" +
	"ATCCTAAGTATTTACAAGACGAGGCTAACCTCCAGCGAGCGTGACAGCCCAGGGAGGGTG" +
	"CGAGGCCTGTTCAAATGCTAGCTCCATAAATAAAGCAATTTCCTCCGGCAGTTTCTGAAA" +
	"GTAGGAAAGGTTACATTTAAGGTTGCGTTTGTTAGCATTTCAGTGTTTGCCGACCTCAGC" +
	"TACAGCATCCCTGCAAGGCCTCGGGAGACCCAGAAGTTTCTCGCCCCTTAGATCCAAACT" +
	"TGAGCAACCCGGAGTCTGGATTCCTGGGAAGTCCTCAGCTGTCCTGCGGTTGTGCCGGGG" +
	"CCCCAGGTCTGGAGGGGACC"

// Promoter is the 1000 bases upstream of the transcription start site
// followed by the 5' UTR.
const Promoter = "" +
	"AGTGGCCGTGTGGCTTCTACTGCTGGGCTGGAAGTCGGGCCTCCTAGCTCTGCAGTCCGA" +
	"GGCTTGGAGCCAGGTGCCTGGACCCCGAGGTTGCCCTCCACCCTGTGCGGGCGGGATGTG" +
	"ACCAGATGTTGGCCTCATCTGCCAGACAGAGTGCCGGGGCCCAGGGTCAAGGCCGTTGTG" +
	"GCTGGTGTGAGGCGCCCGGTGCGCGGCCAGCAGGAGCGCCTGGCTCCATTTCCCACCCTT" +
	"TCTCGACGGGACCGCCCCGGTGGGTGATTAACAGATTTGGGGTGGTTTGCTCATGGTGGG" +
	"GACCCCTCGCCGCCTGAGAACCTGCAAAGAGAAATGACGGGCCTGTGTCAAGGAGCCCAA" +
	"GTCGCGGGGAAGTGTTGCAGGGAGGCACTCCGGGAGGTCCCGCGTGCCCGTCCAGGGAGC" +
	"AATGCGTCCTCGGGTTCGTCCCCAGCCGCGTCTACGCGCCTCCGTCCTCCCCTTCACGTC" +
	"CGGCATTCGTGGTGCCCGGAGCCCGACGCCCCGCGTCCGGACCTGGAGGCAGCCCTGGGT" +
	"CTCCGGATCAGGCCAGCGGCCAAAGGGTCGCCGCACGCACCTGTTCCCAGGGCCTCCACA" +
	"TCATGGCCCCTCCCTCGGGTTACCCCACAGCCTAGGCCGATTCGACCTCTCTCCGCTGGG" +
	"GCCCTCGCTGGCGTCCCTGCACCCTGGGAGCGCGAGCGGCGCGCGGGCGGGGAAGCGCGG" +
	"CCCAGACCCCCGGGTCCGCCCGGAGCAGCTGCGCTGTCGGGGCCAGGCCGGGCTCCCAGT" +
	"GGATTCGCGGGCACAGACGCCCAGGACCGCGCTTCCCACGTGGCGGAGGGACTGGGGACC" +
	"CGGGCACCCGTCCTGCCCCTTCACCTTCCAGCTCCGCCTCCTCCGCGCGGACCCCGCCCC" +
	"GTCCCGACCCCTCCCGGGTCCCCGGCCCAGCCCCCTCCGGGCCCTCCCAGCCCCTCCCCT" +
	"TCCTTTCCGCGGCCCCGCCCTCTCCTCGCGGCGCGAGTTTCAGGCAGCGCTGCGTCCTGC" +
	"TGCGCACGTGGGAAGCCCTGGCCCCGGCCACCCCCGCG"

// RightArm is the 500 bases following the 5' UTR, starting at the ATG.
const RightArm = "" +
	"ATGCCGCGCGCTCCCCGCTGCCGAGCCGTGCGCTCCCTGCTGCGCAGCCACTACCGCGAG" +
	"GTGCTGCCGCTGGCCACGTTCGTGCGGCGCCTGGGGCCCCAGGGCTGGCGGCTGGTGCAG" +
	"CGCGGGGACCCGGCGGCTTTCCGCGCGCTGGTGGCCCAGTGCCTGGTGTGCGTGCCCTGG" +
	"GACGCACGGCCGCCCCCCGCCGCCCCCTCCTTCCGCCAGGTGGGCCTCCCCGGGGTCGGC" +
	"GTCCGGCTGGGGTTGAGGGCGGCCGGGGGGAACCAGCGACATGCGGAGAGCAGCGCAGGC" +
	"GACTCAGGGCGCTTCCCCCGCAGGTGTCCTGCCTGAAGGAGCTGGTGGCCCGAGTGCTGC" +
	"AGAGGCTGTGCGAGCGCGGCGCGAAGAACGTGCTGGCCTTCGGCTTCGCGCTGCTGGACG" +
	"GGGCCCGCGGGGGCCCCCCCGAGGCCTTCACCACCAGCGTGCGCAGCTACCTGCCCAACA" +
	"CGGTGACCGACGCACTGCGG"
