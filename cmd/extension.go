package cmd

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"syscall"
)

const (
	EnvDataDir = "POKERLOG_DATA_DIR"
	EnvStorage = "POKERLOG_STORAGE"
	EnvVerbose = "POKERLOG_VERBOSE"
)

// RunExtension attempts to find and execute an external
// pokerlog-<subcommand> binary. It returns (true, exitCode) if an
// extension was found and executed, and (false, 0) otherwise.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "pokerlog-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Printf("External command %q not found in PATH: %v", externalCmdName, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass global flags as environment variables.
	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvDataDir+"="+*dataDir)
	cmd.Env = append(cmd.Env, EnvStorage+"="+*storageKind)
	cmd.Env = append(cmd.Env, EnvVerbose+"="+strconv.FormatBool(*Verbose))

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}

	return true, 0
}
