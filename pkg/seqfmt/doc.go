// Package seqfmt reads and writes sequence records in the supported file
// formats.
//
// Design:
//   • Every format is a Codec registered by name from an init() block.
//   • Validate sees the whole batch before Encode writes a byte, so a batch
//     that breaks a format rule never produces a partial file.
//   • FASTA and FASTQ go through biogo's seqio readers and writers, and the
//     alignments (phylip, clustal, nexus) through goalign's io packages.
//     The flat-file grammars (embl, swiss) live in this package.
package seqfmt
