package service

import (
	"fmt"
	"log"
	"os"

	"github.com/kardianos/service"
)

type ServiceManager struct {
	service service.Service
	daemon  *Daemon
}

type program struct {
	daemon *Daemon
}

func (p *program) Start(s service.Service) error {
	log.Println("Starting update-hosts service...")
	return p.daemon.Start()
}

func (p *program) Stop(s service.Service) error {
	log.Println("Stopping update-hosts service...")
	return p.daemon.Stop()
}

func NewServiceManager() (*ServiceManager, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %v", err)
	}

	svcConfig := &service.Config{
		Name:        "update-hosts",
		DisplayName: "Update-Hosts Blocklist Refresher",
		Description: "Periodically rebuilds the system hosts file from configured blocklists",
		Executable:  execPath,
		Arguments:   []string{"service", "run"},
		Option: service.KeyValue{
			"RunAtLoad": true,
			"KeepAlive": true,
		},
	}

	daemon := NewDaemon()
	prg := &program{daemon: daemon}

	svc, err := service.New(prg, svcConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create service: %v", err)
	}

	return &ServiceManager{
		service: svc,
		daemon:  daemon,
	}, nil
}

func (sm *ServiceManager) Install() error {
	if err := sm.service.Install(); err != nil {
		return fmt.Errorf("failed to install service: %v", err)
	}
	fmt.Println("Service installed and enabled for auto-start")
	return nil
}

func (sm *ServiceManager) Uninstall() error {
	if err := sm.service.Uninstall(); err != nil {
		return fmt.Errorf("failed to uninstall service: %v", err)
	}
	fmt.Println("Service uninstalled")
	return nil
}

func (sm *ServiceManager) Start() error {
	return sm.service.Start()
}

func (sm *ServiceManager) Stop() error {
	return sm.service.Stop()
}

func (sm *ServiceManager) Status() (string, error) {
	status, err := sm.service.Status()
	if err != nil {
		return "Unknown", err
	}

	switch status {
	case service.StatusRunning:
		return "Running", nil
	case service.StatusStopped:
		return "Stopped", nil
	case service.StatusUnknown:
		return "Unknown", nil
	default:
		return fmt.Sprintf("Status(%d)", int(status)), nil
	}
}

func (sm *ServiceManager) Run() error {
	return sm.service.Run()
}
