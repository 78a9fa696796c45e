package main

import (
	"testing"
	"time"

	"github.com/vovakirdan/lanerun/internal/platform/tui"
)

func TestServeFlagDefaults(t *testing.T) {
	def := tui.DefaultSSHServerConfig()
	if got := serveCmd.Flags().Lookup("ssh").DefValue; got != def.Address {
		t.Errorf("--ssh default = %q, want %q", got, def.Address)
	}
	if got := serverConfig(); got != def {
		t.Errorf("serverConfig() with no flags set = %+v, want %+v", got, def)
	}
}

func TestServerConfigFromFlags(t *testing.T) {
	if err := serveCmd.Flags().Parse([]string{"--ssh", ":2222", "--idle-timeout", "5", "--host-key", "key"}); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		def := tui.DefaultSSHServerConfig()
		flagSSHAddr = def.Address
		flagHostKey = def.HostKeyPath
		flagIdleTimeout = int(def.IdleTimeout / time.Minute)
	})

	got := serverConfig()
	want := tui.SSHServerConfig{Address: ":2222", HostKeyPath: "key", IdleTimeout: 5 * time.Minute}
	if got != want {
		t.Errorf("serverConfig() = %+v, want %+v", got, want)
	}
}
