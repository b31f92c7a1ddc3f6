package tentry

type (
	// Record is one wire-level entry of the fixed 26-byte entry table.
	// StringOffset and StringLength are relative to the string block start.
	Record struct {
		Flags          uint16 `json:"flags"`
		SoundResref    []byte `json:"sound_resref"`
		VolumeVariance uint32 `json:"volume_variance"`
		PitchVariance  uint32 `json:"pitch_variance"`
		StringOffset   uint32 `json:"string_offset"`
		StringLength   uint32 `json:"string_length"`
	}
	// Entry is one localized string slot with its text already decoded.
	// The entry's index within a table is the string reference that the
	// rest of the game engine uses, which makes the ordering positional
	// storage rather than a map.
	Entry struct {
		Text           string `json:"text"`
		SoundResref    []byte `json:"sound_resref"`
		Flags          uint16 `json:"flags"`
		VolumeVariance uint32 `json:"volume_variance"`
		PitchVariance  uint32 `json:"pitch_variance"`
	}
)

const (
	DefaultRecordSize = 26
	ResrefSize        = 8
)

const (
	FlagText  = uint16(0x01)
	FlagSound = uint16(0x02)
	FlagToken = uint16(0x04)
)

func (e Entry) HasText() bool {
	return e.Flags&FlagText != 0
}

func (e Entry) HasSound() bool {
	return e.Flags&FlagSound != 0
}

func (e Entry) HasToken() bool {
	return e.Flags&FlagToken != 0
}
