package rlp

import (
	"encoding/binary"

	"github.com/holiman/uint256"
)

// ToBigCompact returns the minimal big-endian byte sequence for n, with no
// leading zero byte. Zero encodes as the empty sequence (§4.1).
func ToBigCompact(n uint64) []byte {
	if n == 0 {
		return nil
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], n)
	i := 0
	for i < 7 && buf[i] == 0 {
		i++
	}
	out := make([]byte, 8-i)
	copy(out, buf[i:])
	return out
}

// FromBigCompact parses a big-endian compact byte sequence into a uint64.
// It rejects a nonempty input that begins with a zero byte (ErrLeadingZero)
// and input wider than 8 significant bytes (ErrOverflow).
func FromBigCompact(b []byte) (uint64, error) {
	if len(b) == 0 {
		return 0, nil
	}
	if b[0] == 0 {
		return 0, ErrLeadingZero
	}
	if len(b) > 8 {
		return 0, ErrOverflow
	}
	var v uint64
	for _, x := range b {
		v = v<<8 | uint64(x)
	}
	return v, nil
}

// ToBigCompact256 is the 256-bit counterpart of ToBigCompact. Zero encodes
// as the empty sequence.
func ToBigCompact256(n *uint256.Int) []byte {
	if n.IsZero() {
		return nil
	}
	b := n.Bytes() // big-endian, already stripped of leading zeros by uint256
	return b
}

// FromBigCompact256 parses a big-endian compact byte sequence into a
// 256-bit unsigned integer, rejecting a leading zero byte and input wider
// than 32 significant bytes.
func FromBigCompact256(b []byte) (*uint256.Int, error) {
	if len(b) == 0 {
		return new(uint256.Int), nil
	}
	if b[0] == 0 {
		return nil, ErrLeadingZero
	}
	if len(b) > 32 {
		return nil, ErrOverflow
	}
	return new(uint256.Int).SetBytes(b), nil
}

// StoreBigU16 writes v as 2 big-endian bytes into dst.
func StoreBigU16(dst []byte, v uint16) { binary.BigEndian.PutUint16(dst, v) }

// LoadBigU16 reads 2 big-endian bytes from src as a uint16.
func LoadBigU16(src []byte) uint16 { return binary.BigEndian.Uint16(src) }

// StoreBigU32 writes v as 4 big-endian bytes into dst.
func StoreBigU32(dst []byte, v uint32) { binary.BigEndian.PutUint32(dst, v) }

// LoadBigU32 reads 4 big-endian bytes from src as a uint32.
func LoadBigU32(src []byte) uint32 { return binary.BigEndian.Uint32(src) }

// StoreBigU64 writes v as 8 big-endian bytes into dst.
func StoreBigU64(dst []byte, v uint64) { binary.BigEndian.PutUint64(dst, v) }

// LoadBigU64 reads 8 big-endian bytes from src as a uint64.
func LoadBigU64(src []byte) uint64 { return binary.BigEndian.Uint64(src) }

// StoreLittleU16 writes v as 2 little-endian bytes into dst.
func StoreLittleU16(dst []byte, v uint16) { binary.LittleEndian.PutUint16(dst, v) }

// LoadLittleU16 reads 2 little-endian bytes from src as a uint16.
func LoadLittleU16(src []byte) uint16 { return binary.LittleEndian.Uint16(src) }

// StoreLittleU32 writes v as 4 little-endian bytes into dst.
func StoreLittleU32(dst []byte, v uint32) { binary.LittleEndian.PutUint32(dst, v) }

// LoadLittleU32 reads 4 little-endian bytes from src as a uint32.
func LoadLittleU32(src []byte) uint32 { return binary.LittleEndian.Uint32(src) }

// StoreLittleU64 writes v as 8 little-endian bytes into dst.
func StoreLittleU64(dst []byte, v uint64) { binary.LittleEndian.PutUint64(dst, v) }

// LoadLittleU64 reads 8 little-endian bytes from src as a uint64.
func LoadLittleU64(src []byte) uint64 { return binary.LittleEndian.Uint64(src) }
