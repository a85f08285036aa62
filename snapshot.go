package jpegdsp

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Snapshots store Coefficients as a zstd-compressed little-endian stream. They are used as
// golden files when comparing backends and as fuzz corpora.
var snapshotMagic = [4]byte{'J', 'D', 'S', 'P'}

const (
	snapshotVersion = 1

	// maxSnapshotSize bounds the decompressed size of a snapshot.
	maxSnapshotSize = 1 << 30
)

type snapshotHeader struct {
	Magic      [4]byte
	Version    uint8
	Method     uint8
	ColorSpace uint8
	NumQuant   uint8
	NumComp    uint8
	Width      uint32
	Height     uint32
}

type snapshotComponent struct {
	H, V       uint8
	QuantIndex uint8
	BlocksWide uint32
	BlocksHigh uint32
}

func mustNewZstdEncoder() *zstd.Encoder {
	enc, err := zstd.NewWriter(
		nil,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
		zstd.WithLowerEncoderMem(true),
	)
	if err != nil {
		panic(err)
	}

	return enc
}

func mustNewZstdDecoder() *zstd.Decoder {
	dec, err := zstd.NewReader(
		nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(true),
		zstd.WithDecoderMaxMemory(maxSnapshotSize),
	)
	if err != nil {
		panic(err)
	}

	return dec
}

var zstdEncPool = sync.Pool{
	New: func() interface{} {
		return mustNewZstdEncoder()
	},
}

var zstdDecPool = sync.Pool{
	New: func() interface{} {
		return mustNewZstdDecoder()
	},
}

// WriteSnapshot writes c to w.
func WriteSnapshot(w io.Writer, c *Coefficients) error {
	if err := c.Validate(); err != nil {
		return err
	}

	var buf bytes.Buffer

	hdr := snapshotHeader{
		Magic:      snapshotMagic,
		Version:    snapshotVersion,
		Method:     uint8(c.Method),
		ColorSpace: uint8(c.ColorSpace),
		NumQuant:   uint8(len(c.Quant)),
		NumComp:    uint8(len(c.Components)),
		Width:      uint32(c.Width),
		Height:     uint32(c.Height),
	}

	// Writes to a bytes.Buffer do not fail.
	_ = binary.Write(&buf, binary.LittleEndian, &hdr)
	_ = binary.Write(&buf, binary.LittleEndian, c.Quant)

	for _, cp := range c.Components {
		sc := snapshotComponent{
			H:          uint8(cp.H),
			V:          uint8(cp.V),
			QuantIndex: uint8(cp.QuantIndex),
			BlocksWide: uint32(cp.BlocksWide),
			BlocksHigh: uint32(cp.BlocksHigh),
		}

		_ = binary.Write(&buf, binary.LittleEndian, &sc)
		_ = binary.Write(&buf, binary.LittleEndian, cp.Blocks)
	}

	enc := zstdEncPool.Get().(*zstd.Encoder)
	out := enc.EncodeAll(buf.Bytes(), nil)
	zstdEncPool.Put(enc)

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	return nil
}

// ReadSnapshot reads Coefficients written by WriteSnapshot.
func ReadSnapshot(r io.Reader) (*Coefficients, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	dec := zstdDecPool.Get().(*zstd.Decoder)
	raw, err := dec.DecodeAll(data, nil)
	zstdDecPool.Put(dec)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}

	br := bytes.NewReader(raw)

	var hdr snapshotHeader
	if err := binary.Read(br, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("header: %w", ErrInvalidSnapshot)
	}

	if hdr.Magic != snapshotMagic || hdr.Version != snapshotVersion {
		return nil, fmt.Errorf("bad magic or version %d: %w", hdr.Version, ErrInvalidSnapshot)
	}

	if hdr.Width > maxDimension || hdr.Height > maxDimension {
		return nil, fmt.Errorf("%dx%d: %w", hdr.Width, hdr.Height, ErrInvalidSnapshot)
	}

	c := &Coefficients{
		Width:      int(hdr.Width),
		Height:     int(hdr.Height),
		Method:     DCTMethod(hdr.Method),
		ColorSpace: ColorSpace(hdr.ColorSpace),
		Quant:      make([]QuantTable, hdr.NumQuant),
		Components: make([]Component, hdr.NumComp),
	}

	if err := binary.Read(br, binary.LittleEndian, c.Quant); err != nil {
		return nil, fmt.Errorf("quant tables: %w", ErrInvalidSnapshot)
	}

	for i := range c.Components {
		var sc snapshotComponent
		if err := binary.Read(br, binary.LittleEndian, &sc); err != nil {
			return nil, fmt.Errorf("component %d: %w", i, ErrInvalidSnapshot)
		}

		n := uint64(sc.BlocksWide) * uint64(sc.BlocksHigh)
		if n*dctSize2*2 > uint64(br.Len()) {
			return nil, fmt.Errorf("component %d: truncated blocks: %w", i, ErrInvalidSnapshot)
		}

		cp := &c.Components[i]
		cp.H, cp.V, cp.QuantIndex = int(sc.H), int(sc.V), int(sc.QuantIndex)
		cp.BlocksWide, cp.BlocksHigh = int(sc.BlocksWide), int(sc.BlocksHigh)
		cp.Blocks = make([][dctSize2]int16, n)

		if err := binary.Read(br, binary.LittleEndian, cp.Blocks); err != nil {
			return nil, fmt.Errorf("component %d: %w", i, ErrInvalidSnapshot)
		}
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}

	return c, nil
}
