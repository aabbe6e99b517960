//go:build linux

package platform

import "os/exec"

var linuxPlayers = [][]string{
	{"paplay"},
	{"pw-play"},
	{"aplay", "-q"},
}

func soundCommand(path string) (*exec.Cmd, error) {
	for _, player := range linuxPlayers {
		binary, err := exec.LookPath(player[0])
		if err != nil {
			continue
		}
		args := append(append([]string(nil), player[1:]...), path)
		return exec.Command(binary, args...), nil
	}
	return nil, ErrSoundUnsupported
}
