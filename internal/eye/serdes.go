package eye

import (
	"bytes"
	"encoding/binary"
	"encoding/json"

	"github.com/DataDog/zstd"
	"golang.org/x/crypto/blake2b"

	"github.com/geohier/ghier/internal/constants"
	"github.com/geohier/ghier/internal/errors"
)

// The info snapshot file is laid out as magic, format version byte,
// BLAKE2b-256 digest of the compressed body and the zstd compressed
// JSON body. The digest rejects torn or corrupted files. Map object
// events are not part of the snapshot, they live in a journal of
// length prefixed JSON frames which only ever gets appended to, apart
// from compaction rewrites.

var infoMagic = []byte("GHIEREYE")

const infoVersion byte = 1

// infoSnapshot is the JSON body of the info file.
type infoSnapshot struct {
	Tips   []Tip   `json:"tips"`
	Layers []Layer `json:"layers"`
}

// journalFrame is the JSON body of one journal frame.
type journalFrame struct {
	Object MapObject      `json:"object"`
	Event  MapObjectEvent `json:"event"`
}

func serializeInfo(info *Info) ([]byte, error) {
	body, err := json.Marshal(infoSnapshot{Tips: info.Tips, Layers: info.Layers})
	if err != nil {
		return nil, err
	}
	compressed, err := zstd.Compress(nil, body)
	if err != nil {
		return nil, err
	}
	digest := blake2b.Sum256(compressed)

	data := make([]byte, 0, len(infoMagic)+1+len(digest)+len(compressed))
	data = append(data, infoMagic...)
	data = append(data, infoVersion)
	data = append(data, digest[:]...)
	data = append(data, compressed...)
	return data, nil
}

func deserializeInfo(data []byte, info *Info) error {
	headerLen := len(infoMagic) + 1 + blake2b.Size256
	if len(data) < headerLen {
		return errors.Wrap(errors.ErrCorruptData, "eye info snapshot too short")
	}
	if !bytes.Equal(data[:len(infoMagic)], infoMagic) {
		return errors.Wrap(errors.ErrCorruptData, "eye info snapshot magic mismatch")
	}
	if version := data[len(infoMagic)]; version != infoVersion {
		return errors.Wrapf(errors.ErrUnknownVersion, "eye info snapshot version %d", version)
	}

	var digest [blake2b.Size256]byte
	copy(digest[:], data[len(infoMagic)+1:headerLen])
	compressed := data[headerLen:]
	if blake2b.Sum256(compressed) != digest {
		return errors.Wrap(errors.ErrCorruptData, "eye info snapshot digest mismatch")
	}

	body, err := zstd.Decompress(nil, compressed)
	if err != nil {
		return errors.Wrap(err, "decompressing eye info snapshot")
	}
	var snapshot infoSnapshot
	if err := json.Unmarshal(body, &snapshot); err != nil {
		return errors.Wrap(err, "decoding eye info snapshot")
	}

	info.Tips = snapshot.Tips
	info.Layers = snapshot.Layers
	return nil
}

func serializeMapObjectEvent(object MapObject, event MapObjectEvent) ([]byte, error) {
	body, err := json.Marshal(journalFrame{Object: object, Event: event})
	if err != nil {
		return nil, err
	}
	frame := make([]byte, 4+len(body))
	binary.LittleEndian.PutUint32(frame, uint32(len(body)))
	copy(frame[4:], body)
	return frame, nil
}

func serializeMapObjects(mapObjects MapObjects) ([]byte, error) {
	var buf bytes.Buffer
	for object, events := range mapObjects {
		for _, event := range events {
			frame, err := serializeMapObjectEvent(object, event)
			if err != nil {
				return nil, err
			}
			buf.Write(frame)
		}
	}
	return buf.Bytes(), nil
}

func deserializeMapObjects(data []byte, mapObjects MapObjects) error {
	for len(data) > 0 {
		if len(data) < 4 {
			return errors.Wrap(errors.ErrCorruptData, "eye journal length prefix truncated")
		}
		frameLen := int(binary.LittleEndian.Uint32(data))
		if frameLen == 0 || frameLen > constants.JournalFrameLimit {
			return errors.Wrapf(errors.ErrCorruptData, "eye journal frame of %d bytes", frameLen)
		}
		data = data[4:]
		if len(data) < frameLen {
			return errors.Wrap(errors.ErrCorruptData, "eye journal frame truncated")
		}

		var frame journalFrame
		if err := json.Unmarshal(data[:frameLen], &frame); err != nil {
			return errors.Wrap(err, "decoding eye journal frame")
		}
		mapObjects[frame.Object] = append(mapObjects[frame.Object], frame.Event)
		data = data[frameLen:]
	}
	return nil
}
