package archive

import (
	"fitheat/internal/archive/interfaces"
	"fitheat/internal/structures"
	"fmt"
	"github.com/klauspost/compress/zstd"
)

// zstdCodec compresses whole archive documents in one shot; archives are
// small enough that streaming buys nothing.
type zstdCodec struct {
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// NewZstdCompressor accepts archive.level as "fastest", "default",
// "better" or "best". Empty means "better".
func NewZstdCompressor(conf *structures.Config) (interfaces.CompressorInterface, error) {
	level := zstd.SpeedBetterCompression
	if conf.Archive.Level != "" {
		var known bool
		if known, level = zstd.EncoderLevelFromString(conf.Archive.Level); !known {
			return nil, fmt.Errorf("unknown archive.level %q", conf.Archive.Level)
		}
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(level))
	if err != nil {
		return nil, fmt.Errorf("zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	if err != nil {
		_ = enc.Close()
		return nil, fmt.Errorf("zstd decoder: %w", err)
	}
	return &zstdCodec{enc: enc, dec: dec}, nil
}

func (c *zstdCodec) Compress(doc []byte) ([]byte, error) {
	return c.enc.EncodeAll(doc, nil), nil
}

func (c *zstdCodec) Decompress(frame []byte) ([]byte, error) {
	return c.dec.DecodeAll(frame, nil)
}

func (c *zstdCodec) Close() {
	_ = c.enc.Close()
	c.dec.Close()
}
