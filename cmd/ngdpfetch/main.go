// Command ngdpfetch is a minimal driver wiring a default client
// configuration and running bootstrap, mirroring original_source/main.cpp.
// Out of scope per the library's own spec; kept for completeness, the way
// the original source keeps a bare-bones main() around.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kestrelforge/ngdpclient/pkg/client"
	"github.com/kestrelforge/ngdpclient/pkg/ngdplog"
	"github.com/kestrelforge/ngdpclient/pkg/ngdpstats"
)

func main() {
	cfg := client.DefaultConfig()
	cfg.NGDPUrl = "http://us.patch.battle.net"
	cfg.NGDPRegion = "us"
	cfg.GameUID = "wow"
	cfg.LogSink = func(level ngdplog.Level, line string) {
		fmt.Fprintf(os.Stderr, "[ngdp] %s %s\n", level, line)
	}
	cfg.StatsSink = func(e ngdpstats.Event) {
		fmt.Fprintf(os.Stderr, "[stat] %s %d %d %d\n", e.Type, e.Arg0, e.Arg1, e.Arg2)
	}

	c, err := client.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ngdpfetch: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if err := c.Bootstrap(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "ngdpfetch: bootstrap failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "ngdpfetch: bootstrap complete, versions=%s\n", c.Remote().VersionsName())
}
