// Package micro enumerates the extended register instructions of a
// microcoded control unit.
//
// Each primitive micro-operation owns one opcode bit and a set of resource
// counters describing the control lines it drives. A Table composes
// primitives pairwise under the hardware conflict rules, closes the
// combination set over every size, and names each surviving combination
// with a canonical mnemonic bound to its opcode word.
package micro
