// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package file_test

import (
	"encoding/json"
	"io"
)

func jsonDecode(reader io.Reader, target any) error {
	return json.NewDecoder(reader).Decode(target)
}
