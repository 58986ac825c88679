// Package explorer builds block explorer links for addresses, transactions and
// free-form searches, and opens them in the system browser.
package explorer

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/browser"
)

const (
	txHashLen  = 66 // 0x + 32 bytes
	addressLen = 42 // 0x + 20 bytes
)

// BuildURL returns the explorer page for target under base.
//
// Classification uses only the 0x prefix and the exact length:
//   - ""                 -> base, unchanged
//   - 0x + 64 characters -> {base}/tx/{target}
//   - 0x + 40 characters -> {base}/address/{target}
//   - anything else      -> {base}/search?q={target}
//
// Characters after the prefix are not checked for hex, and target is not
// escaped.
func BuildURL(base, target string) string {
	if target == "" {
		return base
	}

	if strings.HasPrefix(target, "0x") {
		switch len(target) {
		case txHashLen:
			return fmt.Sprintf("%s/tx/%s", base, target)
		case addressLen:
			return fmt.Sprintf("%s/address/%s", base, target)
		}
	}

	return fmt.Sprintf("%s/search?q=%s", base, target)
}

// Open launches the system browser on url. Output of the launcher goes to
// stderr so stdout stays clean for shell evaluation.
func Open(url string) error {
	browser.Stdout = os.Stderr
	browser.Stderr = os.Stderr
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	return nil
}
