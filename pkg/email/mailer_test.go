package email

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// silentSMTPServer accepts connections but never sends the SMTP greeting,
// so a dial against it blocks until the client gives up.
func silentSMTPServer(t *testing.T) (host string, port int) {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { listener.Close() })

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			t.Cleanup(func() { conn.Close() })
		}
	}()

	addr := listener.Addr().(*net.TCPAddr)
	return addr.IP.String(), addr.Port
}

func TestSendHonorsContext(t *testing.T) {
	host, port := silentSMTPServer(t)
	mailer := NewSMTPMailer(host, port, "user", "pass", "noreply@yatra.test", "Yatra")

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := mailer.Send(ctx, "alice@example.com", "subject", "body")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestSendHTMLHonorsContext(t *testing.T) {
	host, port := silentSMTPServer(t)
	mailer := NewSMTPMailer(host, port, "user", "pass", "noreply@yatra.test", "Yatra")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := mailer.SendHTML(ctx, "alice@example.com", "subject", "text", "<p>html</p>")
	assert.ErrorIs(t, err, context.Canceled)
}
