package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vitalslab/vitals-cli/internal/encoding"
	"github.com/vitalslab/vitals-cli/internal/fatigue"
	"github.com/vitalslab/vitals-cli/internal/journal"
	"github.com/vitalslab/vitals-cli/internal/models"
	"github.com/vitalslab/vitals-cli/internal/receiver"
	"github.com/vitalslab/vitals-cli/internal/recorder"
	"github.com/vitalslab/vitals-cli/internal/transport"
)

var (
	serveJournal  JournalOptions
	serveHost     string
	servePort     int
	serveToken    string
	serveOut      string
	serveFormat   string
	serveGzip     bool
	serveEncoding string
	serveRecord   string
	serveWellness bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve live snapshots and receive journal exports",
	Long: `Starts the local dashboard backend: an HTTP receiver for journal
exports plus WebSocket, SSE, and UDP broadcast of computed snapshots.

Each accepted export is merged into the in-memory journal and triggers a
fresh snapshot broadcast to every connected client. An initial snapshot
from the on-disk journal is broadcast at startup.

Ports: receiver on --port, WebSocket on +1, SSE on +2, UDP on +3.

Examples:
  vitals serve --sample
  vitals serve --port 9000 --token mysecrettoken
  vitals serve --record session.ndjson --encoding protobuf`,
	RunE: runServe,
}

func init() {
	registerJournalFlags(&serveJournal, serveCmd.Flags())
	serveCmd.Flags().StringVar(&serveHost, "host", "0.0.0.0", "Host address to bind to")
	serveCmd.Flags().IntVar(&servePort, "port", 8787, "Receiver port (broadcast ports follow)")
	serveCmd.Flags().StringVar(&serveToken, "token", "", "Static bearer token (auto-generated if not provided)")
	serveCmd.Flags().StringVar(&serveOut, "out", "", "Directory to write received exports (stdout if not set)")
	serveCmd.Flags().StringVar(&serveFormat, "format", "json", "Export output format: json|ndjson")
	serveCmd.Flags().BoolVar(&serveGzip, "gzip", false, "Accept gzip-compressed exports")
	serveCmd.Flags().StringVar(&serveEncoding, "encoding", "json", "Broadcast encoding for SSE/UDP: json|protobuf")
	serveCmd.Flags().StringVar(&serveRecord, "record", "", "Record broadcast snapshots to an NDJSON file")
	serveCmd.Flags().BoolVar(&serveWellness, "wellness", true, "Merge the wellness organ overlay into snapshots")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Validate format
	serveFormat = strings.ToLower(strings.TrimSpace(serveFormat))
	if serveFormat != "json" && serveFormat != "ndjson" {
		return fmt.Errorf("invalid --format %q (expected: json|ndjson)", serveFormat)
	}
	serveEncoding = strings.ToLower(strings.TrimSpace(serveEncoding))
	if serveEncoding != "json" && serveEncoding != "protobuf" {
		return fmt.Errorf("invalid --encoding %q (expected: json|protobuf)", serveEncoding)
	}

	// Generate token if not provided
	token := serveToken
	if token == "" {
		generated, err := generateToken()
		if err != nil {
			return fmt.Errorf("failed to generate token: %w", err)
		}
		token = generated
	}

	// The journal may not exist yet; serving starts empty in that case
	// and fills up from received exports.
	registry, err := loadRegistry(serveJournal)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "⚠️  %v\n   Starting with an empty journal\n\n", err)
		registry = journal.NewRegistry()
	}

	// Create export writer
	var writer receiver.Writer
	if serveOut != "" {
		fw, err := receiver.NewFileWriter(serveOut, serveFormat)
		if err != nil {
			return fmt.Errorf("failed to create file writer: %w", err)
		}
		writer = fw
	} else {
		writer = receiver.NewStdoutWriter(cmd.OutOrStdout(), serveFormat)
	}
	defer writer.Close()

	config := receiver.Config{
		Host:       serveHost,
		Port:       servePort,
		Token:      token,
		OutDir:     serveOut,
		Format:     serveFormat,
		AcceptGzip: serveGzip,
	}
	recv := receiver.NewServer(config, writer)

	// Snapshot fan-out
	source := make(chan models.Snapshot, 100)
	dispatcher := transport.NewDispatcher(source, 100)

	encoder := encoding.NewEncoder(encoding.Format(serveEncoding))
	wsServer := transport.NewWebSocketServer(serveHost, servePort+1)
	sse := transport.NewSSEServer(serveHost, servePort+2, encoder)
	udp := transport.NewUDPServer(serveHost, servePort+3, encoder)

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(cmd.ErrOrStderr(), "\n⏹  Received interrupt signal, shutting down...")
		cancel()
	}()

	// Recompute and broadcast on every accepted export
	var mu sync.Mutex
	var sequence int64
	recv.OnImport(func(export *models.JournalExport, duplicate bool) {
		if duplicate {
			return
		}
		mu.Lock()
		registry.Merge(export)
		snapshot := buildSnapshot(registry, atomic.AddInt64(&sequence, 1), fatigue.Config{}, serveWellness)
		mu.Unlock()

		select {
		case source <- snapshot:
		case <-ctx.Done():
		}
	})

	// Start broadcast servers
	go func() {
		if err := wsServer.Start(ctx); err != nil && err != context.Canceled {
			log.Printf("WebSocket error: %v", err)
		}
	}()
	go func() {
		if err := sse.Start(ctx); err != nil && err != context.Canceled {
			log.Printf("SSE error: %v", err)
		}
	}()
	go func() {
		if err := udp.Start(ctx); err != nil && err != context.Canceled {
			log.Printf("UDP error: %v", err)
		}
	}()

	go func() { wsServer.BroadcastFromChannel(ctx, dispatcher.Subscribe()) }()
	go func() { sse.BroadcastFromChannel(ctx, dispatcher.Subscribe()) }()
	go func() { udp.BroadcastFromChannel(ctx, dispatcher.Subscribe()) }()

	if serveRecord != "" {
		rec, err := recorder.NewRecorder(serveRecord)
		if err != nil {
			return fmt.Errorf("failed to create recording: %w", err)
		}
		raw := make(chan []byte, 100)
		sub := dispatcher.Subscribe()
		go func() {
			defer close(raw)
			for snapshot := range sub {
				data, err := json.Marshal(snapshot)
				if err != nil {
					continue
				}
				select {
				case raw <- data:
				case <-ctx.Done():
					return
				}
			}
		}()
		go rec.RecordFromChannel(ctx, raw, nil)
	}

	go dispatcher.Run(ctx)

	time.Sleep(200 * time.Millisecond)

	printServeBanner(cmd, recv.GetAddress(), token, wsServer.GetAddress(), sse.GetAddress(), udp.GetAddress())

	// Broadcast the startup snapshot
	mu.Lock()
	initial := buildSnapshot(registry, atomic.AddInt64(&sequence, 1), fatigue.Config{}, serveWellness)
	mu.Unlock()
	select {
	case source <- initial:
	case <-ctx.Done():
	}

	// Start receiver (blocks until context is cancelled)
	if err := recv.Start(ctx); err != nil && err != context.Canceled {
		return fmt.Errorf("receiver error: %w", err)
	}

	// Print final stats
	stats := recv.GetStats()
	fmt.Fprintf(cmd.ErrOrStderr(), "\n📊 Session Stats:\n")
	fmt.Fprintf(cmd.ErrOrStderr(), "   Received:   %d\n", stats.TotalReceived)
	fmt.Fprintf(cmd.ErrOrStderr(), "   Duplicates: %d\n", stats.TotalDuplicates)
	fmt.Fprintf(cmd.ErrOrStderr(), "   Errors:     %d\n", stats.TotalErrors)
	fmt.Fprintf(cmd.ErrOrStderr(), "   Dropped:    %d\n", dispatcher.GetDroppedCount())
	fmt.Fprintln(cmd.ErrOrStderr(), "\n✓ Shutdown complete")

	return nil
}

func printServeBanner(cmd *cobra.Command, address, token, ws, sse, udp string) {
	out := cmd.ErrOrStderr()

	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "╔═══════════════════════════════════════════════════════════════╗")
	fmt.Fprintln(out, "║                  🫀 Vitals Server Started                      ║")
	fmt.Fprintln(out, "╚═══════════════════════════════════════════════════════════════╝")
	fmt.Fprintln(out, "")
	fmt.Fprintf(out, "  Import:    %s/v1/journal/import\n", address)
	fmt.Fprintf(out, "  Token:     %s\n", token)
	fmt.Fprintln(out, "")
	fmt.Fprintf(out, "  WebSocket: %s\n", ws)
	fmt.Fprintf(out, "  SSE:       %s\n", sse)
	fmt.Fprintf(out, "  UDP:       %s\n", udp)
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────────")
	fmt.Fprintln(out, "  Configure in the companion app:")
	fmt.Fprintln(out, "    Settings → Sync → Add Destination")
	fmt.Fprintln(out, "")
	fmt.Fprintf(out, "    Endpoint: %s/v1/journal/import\n", address)
	fmt.Fprintf(out, "    Token:    %s\n", token)
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────────")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Waiting for exports... (Press Ctrl+C to stop)")
	fmt.Fprintln(out, "")
}
