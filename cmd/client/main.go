package main

import (
	"bufio"
	"chatroom/domain"
	grpc2 "chatroom/grpc"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

type Config struct {
	Addr    string `envconfig:"CHAT_ADDR" default:"localhost:50051"`
	Handle  string `envconfig:"CHAT_HANDLE" required:"true"`
	Colours bool   `envconfig:"CHAT_COLOURS" default:"true"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	color.Enable = config.Colours

	conn, err := grpc.NewClient(config.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", config.Addr, err)
	}
	defer conn.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := grpc2.Dial(ctx, conn, domain.Handle(config.Handle))
	if err != nil {
		return err
	}
	color.Info.Printf("Connected to %s as %s. Type /who, /mute, /unmute, /kick or /quit.\n", config.Addr, config.Handle)

	received := make(chan error, 1)
	go func() {
		received <- receive(client)
	}()

	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line, err := ParseLine(scanner.Text())
			if err != nil {
				color.Warn.Println(err)
				continue
			}
			if line.Quit {
				break
			}
			if err := send(client, line.Inbound); err != nil {
				color.Error.Println(err)
				break
			}
		}
		_ = client.CloseSend()
	}()

	select {
	case <-ctx.Done():
		_ = client.CloseSend()
		return nil
	case err := <-received:
		return err
	}
}

func send(client *grpc2.Client, in domain.Inbound) error {
	switch {
	case in.Command != nil:
		return client.SendCommand(*in.Command)
	case in.Roster:
		return client.RequestRoster()
	case in.Text == "":
		return nil
	default:
		return client.SendText(in.Text)
	}
}

// receive prints frames until the server ends the stream.
func receive(client *grpc2.Client) error {
	for {
		frame, err := client.Recv()
		if errors.Is(err, io.EOF) {
			color.Info.Println("Disconnected")
			return nil
		}
		if err != nil {
			if s, ok := status.FromError(err); ok {
				return fmt.Errorf("%s: %s", s.Code(), s.Message())
			}
			return err
		}
		render(frame)
	}
}

func render(frame domain.Frame) {
	at := frame.At.Local().Format("15:04:05")
	switch frame.Kind {
	case domain.FrameMessage:
		fmt.Printf("%s %s %s\n", color.Gray.Render(at), color.Cyan.Render(string(frame.From)+":"), frame.Text)
	case domain.FrameNotice:
		fmt.Printf("%s %s\n", color.Gray.Render(at), color.Yellow.Render("* "+frame.Text))
	case domain.FrameError:
		fmt.Printf("%s %s\n", color.Gray.Render(at), color.Red.Render("! "+frame.Text))
	case domain.FrameRoster:
		renderRoster(frame.Roster)
	}
}

func renderRoster(participants []domain.Participant) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Handle", "Role", "State"})
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, p := range participants {
		table.Append([]string{string(p.Handle), p.Role.String(), p.State.String()})
	}
	table.Render()
}
