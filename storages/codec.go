package storages

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/reusee/tbas/tbas"
)

var encMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Errorf("storages: cbor enc mode: %w", err))
	}
	encMode = em
}

func MarshalFrame(frame tbas.Frame) ([]byte, error) {
	return encMode.Marshal(frame)
}

func UnmarshalFrame(data []byte) (tbas.Frame, error) {
	var frame tbas.Frame
	if err := cbor.Unmarshal(data, &frame); err != nil {
		return frame, fmt.Errorf("storages: unmarshal frame: %w", err)
	}
	return frame, nil
}
