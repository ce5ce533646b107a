// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"sort"
	"strings"

	"github.com/pdiddy/spec-engine/pkg/types"
)

// categoryOrder fixes the registration order of component categories. On a
// score tie the first-registered category wins; the order below is therefore
// part of the classifier's contract, not an accident of map iteration.
var categoryOrder = []types.ComponentType{
	types.TypeMotor,
	types.TypeSensor,
	types.TypeCamera,
	types.TypeProcessor,
	types.TypeBattery,
	types.TypeESC,
	types.TypeRadio,
	types.TypePower,
}

// categoryKeywords associates each category with the keywords that vote for
// it. Matching is case-insensitive substring containment.
var categoryKeywords = map[types.ComponentType][]string{
	types.TypeMotor: {"motor", "brushless", "servo", "actuator", "bldc"},
	types.TypeSensor: {"sensor", "imu", "gps", "accelerometer", "gyro", "gyroscope",
		"barometer", "magnetometer", "compass", "lidar", "ultrasonic"},
	types.TypeCamera: {"camera", "lens", "megapixel", "fps", "resolution", "cmos", "ccd"},
	types.TypeProcessor: {"microcontroller", "mcu", "processor", "cpu", "arm", "esp32",
		"stm32", "arduino", "cortex", "flight controller"},
	types.TypeBattery: {"battery", "lipo", "li-po", "li-ion", "lithium", "mah", "cell"},
	types.TypeESC:     {"esc", "speed controller", "electronic speed"},
	types.TypeRadio:   {"receiver", "transmitter", "radio", "telemetry", "rc", "remote control"},
	types.TypePower: {"regulator", "voltage regulator", "buck", "boost", "ldo", "pdb",
		"power distribution"},
}

// Classify scores the text against every category's keyword set and returns
// the best-scoring category. The score is the number of keywords present as
// case-insensitive substrings. Ties go to the earlier category in
// categoryOrder. The second return is false when every category scores zero.
func Classify(text string) (types.ComponentType, bool) {
	lower := strings.ToLower(Normalize(text))

	var (
		best      types.ComponentType
		bestScore int
	)
	for _, cat := range categoryOrder {
		score := 0
		for _, kw := range categoryKeywords[cat] {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			best = cat
			bestScore = score
		}
	}

	if bestScore == 0 {
		return "", false
	}
	return best, true
}

// ComponentMentions returns every category keyword present in the text,
// deduplicated and sorted. Used to populate Specification.ComponentMentions.
func ComponentMentions(text string) []string {
	lower := strings.ToLower(Normalize(text))

	seen := make(map[string]bool)
	for _, cat := range categoryOrder {
		for _, kw := range categoryKeywords[cat] {
			if strings.Contains(lower, kw) {
				seen[kw] = true
			}
		}
	}

	if len(seen) == 0 {
		return nil
	}
	mentions := make([]string, 0, len(seen))
	for kw := range seen {
		mentions = append(mentions, kw)
	}
	sort.Strings(mentions)
	return mentions
}
