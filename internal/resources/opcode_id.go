// Copyright 2026 ASE-sim Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package resources

import (
	"strconv"
	"strings"
)

// parseOpcodeID parses a hexadecimal opcode key such as "0x0040" or "40" into
// its numeric id.
func parseOpcodeID(key string) (uint16, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(key, "0x"), "0X")
	id, err := strconv.ParseUint(digits, 16, 16)
	if err != nil {
		return 0, err
	}
	return uint16(id), nil
}
