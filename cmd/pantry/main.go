package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/malonaz/pantry/internal/backend"
	"github.com/malonaz/pantry/internal/command"
	"github.com/malonaz/pantry/internal/configuration"
	"github.com/malonaz/pantry/internal/debug"
)

const configFilepath = "~/.config/pantry/config.json"

var rootCmd = &cobra.Command{
	Use:     "pantry",
	Short:   "A chat client for the smart pantry",
	Version: "1.0",
}

func main() {
	config, err := configuration.Parse(configFilepath)
	cobra.CheckErr(err)
	debug.Init(config.DebugLogFile)
	log := debug.GetLogger()

	// The local storage holding the conversation is only opened by the commands using it.
	storage := command.NewStorage(config.Storage, log)
	client := backend.New(config.BackendURL, config.Timeout(), log)

	rootCmd.AddCommand(command.NewChatCmd(config, storage, client))
	rootCmd.AddCommand(command.NewSendCmd(config, storage, client))
	rootCmd.AddCommand(command.NewExpiryCmd(storage, client))
	rootCmd.AddCommand(command.NewItemsCmd(client))
	rootCmd.AddCommand(command.NewHistoryCmd(storage))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = rootCmd.ExecuteContext(ctx)
	stop()
	if closeErr := storage.Close(); closeErr != nil {
		log.Error("closing storage", "error", closeErr)
	}
	if err != nil {
		os.Exit(1)
	}
}
