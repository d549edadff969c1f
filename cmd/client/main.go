package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"talker/auth"
	"talker/infrastructure/grpc/client"
	"talker/subscription"
	"talker/ui"
	"talker/view"

	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const submitTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()
	config, err := ui.LoadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gate := auth.NewGate()
	conn, err := grpc.NewClient(config.ServerAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithPerRPCCredentials(gate),
	)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", config.ServerAddr, err)
	}
	defer conn.Close()

	logClient := client.NewLogClient(conn)
	renderer := ui.NewTerminalRenderer(os.Stdout, config.Colours)
	channel := subscription.NewChannel(logger, logClient, config.RetryInterval)
	controller := view.NewController(logger, gate, channel, logClient, renderer,
		view.Options{LogID: config.LogID})
	defer controller.Close()

	signIn := func() error {
		token, err := logClient.SignIn(ctx, config.UserID, config.AvatarURL)
		if err != nil {
			return err
		}
		_, err = gate.SignIn(token)
		return err
	}
	if err = signIn(); err != nil {
		logger.Warn("Sign in failed", "user_id", config.UserID, "error", err)
	}
	controller.Start(ctx)

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			command, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
			switch command {
			case "":
			case "/quit":
				return nil
			case "/signout":
				controller.SignOut()
			case "/signin":
				if err := signIn(); err != nil {
					fmt.Println("Sign in failed:", err)
					continue
				}
				if err := controller.SignedIn(ctx); err != nil {
					fmt.Println("Sign in failed:", err)
				}
			case "/profile":
				profile, found := renderer.ProfileOf(strings.TrimSpace(arg))
				if !found {
					fmt.Printf("No recent message from %q\n", arg)
					continue
				}
				controller.SelectUser(profile)
			case "/back":
				controller.GoBack(ctx)
			default:
				controller.UpdateDraft(line)
				submitCtx, cancel := context.WithTimeout(ctx, submitTimeout)
				if _, err := controller.Submit(submitCtx); err != nil {
					fmt.Println("Not sent:", err)
				}
				cancel()
			}
		}
	}
}
