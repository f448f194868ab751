package worker

import (
	"context"
	"testing"

	"StripedMandelbrot/mandelbrot"
	"StripedMandelbrot/misc"
	"StripedMandelbrot/task"
)

func TestRemoteRoundTrip(t *testing.T) {
	for _, transport := range []string{TransportTcp, TransportHttp} {
		t.Run(transport, func(t *testing.T) {
			w := NewWorker(Local{}, "TestWorker")
			settings := Settings{ServerAddress: "127.0.0.1:0", Transport: transport}
			server := settings.NewServer(w)
			if err := server.Run(); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			defer server.Stop()

			client := NewClient(transport, server.Address())
			if err := client.Connect(); err != nil {
				t.Fatalf("Connect() error = %v", err)
			}
			defer client.Disconnect()

			var present bool
			if err := client.CallContext(context.Background(), "Worker.RollCall", misc.Nothing{}, &present); err != nil || !present {
				t.Fatalf("RollCall() = %t, %v", present, err)
			}

			tk := task.NewTask(3, 5, 4, mandelbrot.DefaultViewport, 20, 16, mandelbrot.Options{MaxIterations: 64, EscapeRadius: 2}, testTable(t))
			got, err := NewRemote(client).RenderColumn(context.Background(), tk)
			if err != nil {
				t.Fatalf("RenderColumn() error = %v", err)
			}
			want := Compute(tk)
			if got.Generation != want.Generation || got.Column != want.Column || len(got.Rows) != len(want.Rows) {
				t.Fatalf("RenderColumn() = %s, want %s", got.String(), want.String())
			}
			for i := range want.Rows {
				if got.Rows[i] != want.Rows[i] {
					t.Errorf("rows[%d] = %s, want %s", i, got.Rows[i].String(), want.Rows[i].String())
				}
			}
			if w.ColumnsCompleted() != 1 {
				t.Errorf("ColumnsCompleted() = %d, want 1", w.ColumnsCompleted())
			}
		})
	}
}

func TestRemoteHonorsCancelledContext(t *testing.T) {
	w := NewWorker(Local{}, "TestWorker")
	settings := Settings{ServerAddress: "127.0.0.1:0", Transport: TransportTcp}
	server := settings.NewServer(w)
	if err := server.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	defer server.Stop()

	client := NewClient(TransportTcp, server.Address())
	if err := client.Connect(); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	defer client.Disconnect()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewRemote(client).RenderColumn(ctx, task.Task{Height: 1}); err == nil {
		t.Error("RenderColumn() error = nil for a cancelled context")
	}
}

func TestSettingsVerify(t *testing.T) {
	s := Settings{ServerAddress: "127.0.0.1:1234"}
	if err := s.Verify(); err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if s.Transport != TransportTcp {
		t.Errorf("Transport = %q, want %q", s.Transport, TransportTcp)
	}

	bad := Settings{ServerAddress: "127.0.0.1:1234", Transport: "carrier pigeon"}
	if err := bad.Verify(); err == nil {
		t.Error("Verify() accepted an unknown transport")
	}
}
