// Package control provides the block framing used by fixray frame streams.
//
// Control blocks use a prefix coding scheme to indicate the type of the
// current byte (which then further indicates how many bytes the field
// contains). Small values, which make up most of a rendered frame, are packed
// directly into the control byte.
//
// Control Block
//
// This diagram indicates the bits that are fixed (filled in) vs bits that are
// available for encoding data (blanks). Only the first byte is shown.
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || Type           |                                             |
//  |---------------|---------------||----------------|---------------------------------------------|
//  | 1 |                           || Data           | 2^7 = 128 values                            |
//  | 0 . 1 |                       || Data Size      | 2^6 = 64 bytes                              |
//  | 0 . 0 . 1 |                   || Data + 1       | 2^(5+8) = 8192 values                       |
//  | 0 . 0 . 0 . 1 |               || Data + 2       | 2^(4+8+8) = 1048576 values                  |
//  | 0 . 0 . 0 . 0 . 1 |           || Data Size Size | 2^3 = 8 bytes size                          |
//  | 0 . 0 . 0 . 0 . 0 . 1 . 1 . 0 || Unbounded      | Start of a container                        |
//  | 0 . 0 . 0 . 0 . 0 . 1 . 0 . 0 || End            | End of the innermost container              |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 1 |   || Skip Size      | 2^1 = 2 bytes size; up to 65536 fields      |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 1 || Empty          | Empty value                                 |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 0 || Null           | Null value                                  |
//  |---------------|---------------||----------------|---------------------------------------------|
//
// All sizes and skips are indexed starting at 1 to maximize their effective
// range. The bytes 0b0000_0101 and 0b0000_0111 are reserved.
//
// Data blocks hold 7 bits inline. Data + 1 and Data + 2 blocks hold 13 and 20
// bits in two and three bytes. Data Size blocks carry up to 64 bytes and Data
// Size Size blocks carry a size of up to 8 bytes followed by the data.
//
// Skip Size blocks indicate that a run of fields hold their default value and
// aren't directly encoded in the byte stream (e.g. the unlit background of a
// frame).
//
// Unbounded containers group the fields between them and the matching End
// block. A decoder that is not interested in a container can Seek past it.
package control
