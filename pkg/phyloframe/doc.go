// Package phyloframe writes rows of a table as sequence files and reads
// sequence files back into tables.
//
// A row becomes one seqfmt.Record: the sequence and id columns are always
// read, name and description only when IDOnly is false. The batch is then
// handed to the seqfmt codec named by the format tag. With a Filename the
// whole batch is written as one file; without one each record is
// serialized on its own and the fragments are concatenated in row order.
//
// The To* functions fix the format and its id-only default from a single
// defaults table (see Formats). Wrap gives any frame.Table those functions
// as methods.
package phyloframe
