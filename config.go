package malloc

import (
	s "github.com/bnclabs/gosettings"
)

// DefaultSettings returns the default configuration for NewHeap, modeled on
// a Settings map shape with nil-safe accessor defaults.
//
// "wordsize" (int64, default 8)
//		WSIZE in bytes; DSIZE is always 2x wordsize. Present for
//		documentation and validation only; this module's boundary-tag
//		arithmetic runs over Go's native uintptr, so a caller-supplied value
//		must match unsafe.Sizeof(uintptr(0)) on the target platform or
//		NewHeap panics.
//
// "classthresholds" ([]int64, default {64,128,256,512,1024,2048,4096})
//		Upper bound, in bytes, of each finite size class. The implicit
//		final class catches every size above the last threshold. Must be
//		strictly increasing.
//
// "extendstep" (int64, default 0, meaning "exactly the requested size")
//		Minimum number of bytes requested per heap extension; lets a caller
//		trade extra up-front heap growth for fewer arena round-trips.
//
// "verbose" (bool, default false)
//		Equivalent to calling LogComponents("all").
func DefaultSettings() s.Settings {
	return s.Settings{
		"wordsize":        int64(wordSize),
		"classthresholds": defaultClassThresholds(),
		"extendstep":      int64(0),
		"verbose":         false,
	}
}

func defaultClassThresholds() []int64 {
	return []int64{64, 128, 256, 512, 1024, 2048, 4096}
}

func settingsInt64(setts s.Settings, key string, def int64) int64 {
	if setts == nil {
		return def
	}
	if _, ok := setts[key]; !ok {
		return def
	}
	return setts.Int64(key)
}

func settingsBool(setts s.Settings, key string, def bool) bool {
	if setts == nil {
		return def
	}
	if _, ok := setts[key]; !ok {
		return def
	}
	return setts.Bool(key)
}

func settingsThresholds(setts s.Settings) []uintptr {
	raw := defaultClassThresholds()
	if setts != nil {
		if v, ok := setts["classthresholds"]; ok {
			switch vals := v.(type) {
			case []int64:
				raw = vals
			case []uintptr:
				out := make([]uintptr, len(vals))
				copy(out, vals)
				return out
			}
		}
	}
	out := make([]uintptr, len(raw))
	for i, v := range raw {
		out[i] = uintptr(v)
	}
	return out
}
