package shell

import (
	"strings"
	"testing"
)

func TestIntegration(t *testing.T) {
	for _, sh := range Supported {
		t.Run(sh, func(t *testing.T) {
			script, err := Integration(sh)
			if err != nil {
				t.Fatalf("Integration(%s): %v", sh, err)
			}
			if !strings.HasPrefix(script, "sg() {") {
				t.Errorf("script should define sg(): %s", script)
			}
			if !strings.Contains(script, "switch|sw|travel|root)") {
				t.Errorf("script missing eval case: %s", script)
			}
			if !strings.Contains(script, `eval "$(command stargate switch --silent)"`) {
				t.Errorf("script missing start-up switch: %s", script)
			}
			if !strings.HasSuffix(script, "\n") {
				t.Error("script should end with a newline")
			}
		})
	}
}

func TestIntegrationUnsupported(t *testing.T) {
	for _, sh := range []string{"fish", "powershell", "", "ZSH"} {
		t.Run(sh, func(t *testing.T) {
			_, err := Integration(sh)
			if err == nil {
				t.Fatalf("Integration(%q) should fail", sh)
			}
			if !strings.Contains(err.Error(), "bash, zsh") {
				t.Errorf("error should list supported shells: %v", err)
			}
		})
	}
}
