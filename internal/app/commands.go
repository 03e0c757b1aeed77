package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Willsatroyd/Update-Hosts/internal/config"
	"github.com/Willsatroyd/Update-Hosts/internal/flush"
	"github.com/Willsatroyd/Update-Hosts/internal/hostsfile"
	"github.com/Willsatroyd/Update-Hosts/internal/service"
	"github.com/Willsatroyd/Update-Hosts/internal/update"
)

func NewUpdateCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Fetch blocklists and rebuild the system hosts file",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := update.Run(config.GetConfig(), update.Options{DryRun: dryRun})
			if err != nil {
				return err
			}
			if dryRun {
				fmt.Printf("Dry run: %d blocked domains from %d sources (%d duplicates removed)\n",
					report.Domains, report.Sources, report.Duplicates)
				return nil
			}
			fmt.Printf("Updated %s: %d blocked domains from %d sources\n",
				report.HostsPath, report.Domains, report.Sources)
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "render without writing the hosts file or flushing the cache")

	return cmd
}

func NewSourcesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sources",
		Short: "Manage blocklist source URLs",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List configured blocklist sources",
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Println("Blocklist Sources:")
				for _, url := range config.GetConfig().Sources {
					fmt.Printf("  - %s\n", url)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "add [url]",
			Short: "Add a blocklist source",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return config.AddSource(args[0])
			},
		},
		&cobra.Command{
			Use:   "remove [url]",
			Short: "Remove a blocklist source",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return config.RemoveSource(args[0])
			},
		},
	)

	return cmd
}

func NewShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetConfig()
			fmt.Printf("Block IP: %s\n", cfg.BlockIP)
			fmt.Printf("Hosts file: %s\n", hostsfile.Path(cfg.HostsFile))
			fmt.Printf("Base hosts file: %s\n", cfg.BaseHostsFile)
			fmt.Printf("Update interval: %d minutes\n", cfg.UpdateIntervalMinutes)
			fmt.Println("\nBlocklist Sources:")
			for _, url := range cfg.Sources {
				fmt.Printf("  - %s\n", url)
			}
			return nil
		},
	}
}

func NewRestoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "restore",
		Short: "Restore the hosts file from the pre-update backup",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := hostsfile.Path(config.GetConfig().HostsFile)
			if err := hostsfile.Restore(path); err != nil {
				return err
			}
			fmt.Printf("Restored %s from backup\n", path)
			return flush.Flush()
		},
	}
}

func NewFlushCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "flush",
		Short: "Flush the OS resolver cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flush.Flush(); err != nil {
				return err
			}
			fmt.Println("Resolver cache flushed")
			return nil
		},
	}
}

func NewServiceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "service",
		Short: "Manage the update-hosts background refresher",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "install",
			Short: "Install the system service",
			RunE: func(cmd *cobra.Command, args []string) error {
				sm, err := service.NewServiceManager()
				if err != nil {
					return err
				}
				return sm.Install()
			},
		},
		&cobra.Command{
			Use:   "uninstall",
			Short: "Uninstall the system service",
			RunE: func(cmd *cobra.Command, args []string) error {
				sm, err := service.NewServiceManager()
				if err != nil {
					return err
				}
				return sm.Uninstall()
			},
		},
		&cobra.Command{
			Use:   "start",
			Short: "Start the system service",
			RunE: func(cmd *cobra.Command, args []string) error {
				sm, err := service.NewServiceManager()
				if err != nil {
					return err
				}
				return sm.Start()
			},
		},
		&cobra.Command{
			Use:   "stop",
			Short: "Stop the system service",
			RunE: func(cmd *cobra.Command, args []string) error {
				sm, err := service.NewServiceManager()
				if err != nil {
					return err
				}
				return sm.Stop()
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Check service status",
			RunE: func(cmd *cobra.Command, args []string) error {
				sm, err := service.NewServiceManager()
				if err != nil {
					return err
				}
				status, _ := sm.Status()
				fmt.Printf("Service status: %s\n", status)
				running, err := service.GetDaemonStatus()
				if err != nil {
					return err
				}
				if running {
					fmt.Println("Daemon status: Running")
				} else {
					fmt.Println("Daemon status: Stopped")
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "run",
			Short: "Run the refresher in the foreground (used by the service)",
			RunE: func(cmd *cobra.Command, args []string) error {
				sm, err := service.NewServiceManager()
				if err != nil {
					return err
				}
				return sm.Run()
			},
		},
	)

	return cmd
}
