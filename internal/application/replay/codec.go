package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
)

// Format selects the on-disk encoding of a replay
type Format int

const (
	FormatJSON Format = iota
	FormatMsgpack
)

// MsgpackExt is the file extension for msgpack replays
const MsgpackExt = ".mpk"

// FormatFor picks the format from a file name. Anything that is not .mpk is JSON.
func FormatFor(filename string) Format {
	if filepath.Ext(filename) == MsgpackExt {
		return FormatMsgpack
	}
	return FormatJSON
}

// Encode writes data to w in the given format
func Encode(w io.Writer, data ReplayData, format Format) error {
	switch format {
	case FormatMsgpack:
		if err := msgpack.NewEncoder(w).Encode(&data); err != nil {
			return fmt.Errorf("failed to encode replay: %w", err)
		}
	default:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(data); err != nil {
			return fmt.Errorf("failed to encode replay: %w", err)
		}
	}
	return nil
}

// Decode reads replay data from r in the given format
func Decode(r io.Reader, format Format) (*ReplayData, error) {
	var data ReplayData
	switch format {
	case FormatMsgpack:
		if err := msgpack.NewDecoder(r).Decode(&data); err != nil {
			return nil, fmt.Errorf("failed to decode replay: %w", err)
		}
	default:
		if err := json.NewDecoder(r).Decode(&data); err != nil {
			return nil, fmt.Errorf("failed to decode replay: %w", err)
		}
	}
	return &data, nil
}

// SaveReplay writes replay data to a file, encoded by its extension
func SaveReplay(filename string, data ReplayData) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Encode(file, data, FormatFor(filename))
}

// LoadReplay loads replay data from a file, decoded by its extension
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file, FormatFor(filename))
}
