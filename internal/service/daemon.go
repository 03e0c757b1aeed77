package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"github.com/Willsatroyd/Update-Hosts/internal/config"
	"github.com/Willsatroyd/Update-Hosts/internal/update"
)

// Daemon refreshes the hosts file on an interval. Each tick runs the
// same pipeline as `update-hosts update`; the write and flush are
// skipped when the fetched lists are byte-identical to the last tick.
type Daemon struct {
	running         bool
	lastFingerprint string
	ctx             context.Context
	cancel          context.CancelFunc
}

func NewDaemon() *Daemon {
	ctx, cancel := context.WithCancel(context.Background())
	return &Daemon{
		ctx:    ctx,
		cancel: cancel,
	}
}

func (d *Daemon) Start() error {
	if d.running {
		return fmt.Errorf("daemon already running")
	}
	d.running = true

	cfg := config.GetConfig()
	if cfg.LogFile != "" {
		log.SetOutput(io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		}))
	}
	log.Println("update-hosts daemon starting...")

	if err := CreatePidFile(); err != nil {
		log.Printf("Warning: Could not create PID file: %v", err)
	}

	go d.refreshLoop()

	log.Println("update-hosts daemon started successfully")
	return nil
}

func (d *Daemon) Stop() error {
	if !d.running {
		return fmt.Errorf("daemon not running")
	}

	log.Println("Stopping update-hosts daemon...")
	d.cancel()
	d.running = false
	RemovePidFile()
	return nil
}

func (d *Daemon) refreshLoop() {
	d.refresh()

	interval := time.Duration(config.GetConfig().UpdateIntervalMinutes) * time.Minute
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-d.ctx.Done():
			return
		case <-ticker.C:
			d.refresh()
		}
	}
}

func (d *Daemon) refresh() {
	cfg := config.GetConfig()
	report, err := update.Run(cfg, update.Options{SkipFingerprint: d.lastFingerprint})
	if err != nil {
		log.Printf("Refresh failed: %v", err)
		return
	}
	d.lastFingerprint = report.Fingerprint
	if report.Written {
		log.Printf("Refreshed %s: %d domains from %d sources", report.HostsPath, report.Domains, report.Sources)
	}
}
