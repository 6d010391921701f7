/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	_ "embed" // Note the blank import for go:embed
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed v1.json
var embeddedV1 []byte

//go:embed v2.json
var embeddedV2 []byte

//go:embed v3.json
var embeddedV3 []byte

var (
	presetsOnce sync.Once
	presetV1    *Configuration
	presetV2    *Configuration
	presetV3    *Configuration
)

// V1 returns the original configuration: every codepoint weighs one and a
// tweet holds at most 140 of them.
func V1() *Configuration {
	loadPresets()
	return presetV1
}

// V2 returns the weighted configuration that raised the limit to 280 and
// charges most non-Latin scripts double.
func V2() *Configuration {
	loadPresets()
	return presetV2
}

// V3 returns the weighted configuration of V2 with emoji sequences charged as
// a single unit.
func V3() *Configuration {
	loadPresets()
	return presetV3
}

// Default returns the configuration used when none is specified. It is V3.
func Default() *Configuration {
	return V3()
}

// loadPresets decodes the embedded preset descriptions once. They are part of
// the binary, so a failure is a build defect and panics.
func loadPresets() {
	presetsOnce.Do(func() {
		presetV1 = mustDecodePreset("v1.json", embeddedV1)
		presetV2 = mustDecodePreset("v2.json", embeddedV2)
		presetV3 = mustDecodePreset("v3.json", embeddedV3)
	})
}

func mustDecodePreset(name string, data []byte) *Configuration {
	if len(data) == 0 {
		panic(fmt.Sprintf("config: embedded preset %s is empty or not found", name))
	}
	var d Description
	if err := json.Unmarshal(data, &d); err != nil {
		panic(fmt.Sprintf("config: embedded preset %s: %v", name, err))
	}
	c, err := New(d)
	if err != nil {
		panic(fmt.Sprintf("config: embedded preset %s: %v", name, err))
	}
	return c
}
