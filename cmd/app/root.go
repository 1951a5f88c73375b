package main

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"lang_demo/internal/config"
	"lang_demo/internal/console"
	"lang_demo/internal/demo"
	"lang_demo/internal/logx"
)

var (
	envFile string
	debug   bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "lang-demo",
	Short: "Go language tour in five console sections",
	Long: `lang-demo prints a short tour of Go basics:

  1. primitives, strings and a name prompt
  2. control flow
  3. arrays, slices and maps
  4. types, embedding and interfaces
  5. error handling around a division prompt`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "env-файл (default: $DEMO_ENV_FILE или ./.env)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "диагностика в stderr")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "баннеры без стилей")
}

func run(in io.Reader, out io.Writer, errOut io.Writer) error {
	// 1. Пока конфиг не прочитан, пишем диагностику только если просили флагом
	logx.Init(debug, errOut)

	// 2. Конфигурация
	cfg, err := config.Load(envFile)
	if err != nil {
		fmt.Fprintf(errOut, "Ошибка конфигурации: %v\n", err)
		return err
	}
	logx.Init(debug || cfg.Debug, errOut)
	log.Printf("config: env=%s system=%q", cfg.EnvFile, cfg.SystemName)

	// 3. Консоль: один общий reader на оба запроса
	con := console.New(in, out, errOut, console.Options{NoColor: noColor || cfg.NoColor})
	defer func() {
		if err := con.CloseInput(); err != nil {
			log.Printf("stdin close: %v", err)
		}
	}()

	// 4. Запуск
	demo.NewRunner(con, cfg.SystemName).Run()
	return nil
}
