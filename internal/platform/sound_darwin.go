//go:build darwin

package platform

import "os/exec"

func soundCommand(path string) (*exec.Cmd, error) {
	binary, err := exec.LookPath("afplay")
	if err != nil {
		return nil, ErrSoundUnsupported
	}
	return exec.Command(binary, path), nil
}
