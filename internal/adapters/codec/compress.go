package codec

import (
	"github.com/klauspost/compress/zstd"
	"go.trai.ch/recomp/internal/core/domain"
	"go.trai.ch/zerr"
)

// zstdEncoder and zstdDecoder are shared by all snapshots; both are safe for concurrent use
// through EncodeAll and DecodeAll.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
	)
	if err != nil {
		panic("codec: zstd encoder initialization failed: " + err.Error())
	}

	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("codec: zstd decoder initialization failed: " + err.Error())
	}
}

func compress(payload []byte, c domain.Compression) []byte {
	if c == domain.CompressionNone {
		return payload
	}
	return zstdEncoder.EncodeAll(payload, make([]byte, 0, len(payload)/2))
}

func decompress(payload []byte, c domain.Compression) ([]byte, error) {
	if c == domain.CompressionNone {
		return payload, nil
	}
	out, err := zstdDecoder.DecodeAll(payload, nil)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrSnapshotDecodeFailed.Error())
	}
	return out, nil
}
