//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"strings"
)

func soundCommand(path string) (*exec.Cmd, error) {
	binary, err := exec.LookPath("powershell")
	if err != nil {
		return nil, ErrSoundUnsupported
	}
	quoted := strings.ReplaceAll(path, "'", "''")
	script := fmt.Sprintf("(New-Object Media.SoundPlayer '%s').PlaySync()", quoted)
	return exec.Command(binary, "-NoProfile", "-NonInteractive", "-Command", script), nil
}
