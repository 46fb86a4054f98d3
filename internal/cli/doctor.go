package cli

import (
	"fmt"
	"net"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/vitalslab/vitals-cli/internal/journal"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check environment and print connection info",
	Long:  `Validates the local environment, checks port availability, and provides connection examples.`,
	RunE:  runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	fmt.Println("🏥 Vitals Environment Check")

	// Check Go version
	fmt.Printf("Go Version:        %s\n", runtime.Version())
	fmt.Printf("OS/Arch:           %s/%s\n\n", runtime.GOOS, runtime.GOARCH)

	// Check journal directory
	journalDir := getJournalDir()
	if _, err := os.Stat(journalDir); err == nil {
		fmt.Printf("✅ Journal directory found: %s\n", journalDir)

		registry := journal.NewRegistry()
		if err := registry.LoadFromDir(journalDir); err == nil {
			summary := registry.Summary()
			fmt.Printf("   %d entries over %d day(s), %d template(s), %d workout(s)\n\n",
				summary.EntryCount, summary.TrackedDays, summary.TemplateCount, summary.WorkoutCount)
		} else {
			fmt.Printf("⚠️  Journal failed to load: %v\n\n", err)
		}
	} else {
		fmt.Printf("❌ Journal directory not found: %s\n", journalDir)
		fmt.Printf("   Run 'vitals demo' to generate one, or use --sample\n\n")
	}

	// Check default ports
	for port, what := range map[int]string{8787: "receiver", 8788: "WebSocket", 8789: "SSE", 8790: "UDP"} {
		if isPortAvailable(port) {
			fmt.Printf("✅ Port %d (%s) is available\n", port, what)
		} else {
			fmt.Printf("⚠️  Port %d (%s) is in use\n", port, what)
		}
	}
	fmt.Println()

	// Print connection examples
	fmt.Println("📡 Connection Examples:")
	fmt.Println()

	fmt.Println("JavaScript/Node.js:")
	fmt.Println("  const ws = new WebSocket('ws://localhost:8788/vitals');")
	fmt.Println("  ws.onmessage = (event) => {")
	fmt.Println("    const snapshot = JSON.parse(event.data);")
	fmt.Println("    console.log(snapshot.muscles);")
	fmt.Println("  };")
	fmt.Println()

	fmt.Println("Python:")
	fmt.Println("  import websocket")
	fmt.Println("  import json")
	fmt.Println("  ws = websocket.WebSocket()")
	fmt.Println("  ws.connect('ws://localhost:8788/vitals')")
	fmt.Println("  while True:")
	fmt.Println("    snapshot = json.loads(ws.recv())")
	fmt.Println("    print(snapshot['organs'])")
	fmt.Println()

	fmt.Println("Go:")
	fmt.Println("  conn, _, err := websocket.DefaultDialer.Dial(\"ws://localhost:8788/vitals\", nil)")
	fmt.Println("  for {")
	fmt.Println("    _, message, err := conn.ReadMessage()")
	fmt.Println("    var snapshot Snapshot")
	fmt.Println("    json.Unmarshal(message, &snapshot)")
	fmt.Println("  }")
	fmt.Println()

	fmt.Println("curl (SSE):")
	fmt.Println("  curl -N http://localhost:8789/vitals/sse")
	fmt.Println()

	fmt.Println("✅ Environment check complete")
	return nil
}

func isPortAvailable(port int) bool {
	addr := fmt.Sprintf("127.0.0.1:%d", port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return false
	}
	listener.Close()
	return true
}
