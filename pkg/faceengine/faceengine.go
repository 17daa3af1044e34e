package faceengine

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"FaceAttendance/internal/entity"

	"github.com/gorilla/websocket"
)

// IFaceEngine is the boundary to the external detection/embedding sidecar.
// The engine owns the ML model; this client only moves frames and results.
type IFaceEngine interface {
	DetectFaces(frame []byte) ([]entity.Face, error)
	IsConnected() bool
	Reconnect() error
	Close()
}

type faceWire struct {
	BBox      []int     `json:"bbox"`
	Age       *int      `json:"age"`
	Gender    *string   `json:"gender"`
	DetScore  *float64  `json:"det_score"`
	Embedding []float64 `json:"embedding"`
}

type detectWire struct {
	Faces      []faceWire `json:"faces"`
	FacesCount int        `json:"faces_count"`
	Error      string     `json:"error,omitempty"`
}

type engineClient struct {
	conn         *websocket.Conn
	mu           sync.Mutex
	pingInterval time.Duration
	readTimeout  time.Duration
	writeTimeout time.Duration
}

func New() IFaceEngine {
	client := &engineClient{
		pingInterval: 30 * time.Second,
		readTimeout:  10 * time.Second,
		writeTimeout: 5 * time.Second,
	}

	go func() {
		if err := client.Reconnect(); err != nil {
			log.Printf("Initial connection to face engine failed: %v. Will retry on demand.", err)
		} else {
			log.Printf("Successfully connected to face engine")
		}
	}()

	return client
}

func (c *engineClient) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

func (c *engineClient) Reconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}

	url := os.Getenv("FACE_ENGINE_WS_URL")
	if url == "" {
		return fmt.Errorf("FACE_ENGINE_WS_URL not configured")
	}

	dialer := websocket.DefaultDialer
	dialer.HandshakeTimeout = 10 * time.Second

	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", url, err)
	}

	conn.SetPingHandler(func(appData string) error {
		err := conn.WriteControl(websocket.PongMessage, []byte(appData), time.Now().Add(c.writeTimeout))
		if err != nil {
			log.Printf("Error sending pong to face engine: %v", err)
		}
		return nil
	})

	c.conn = conn

	go c.keepAlive()

	return nil
}

func (c *engineClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
}

func (c *engineClient) keepAlive() {
	ticker := time.NewTicker(c.pingInterval)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		conn := c.conn
		if conn == nil {
			c.mu.Unlock()
			return
		}

		err := conn.WriteControl(
			websocket.PingMessage,
			[]byte{},
			time.Now().Add(c.writeTimeout),
		)
		if err != nil {
			log.Printf("Ping to face engine failed, marking connection as dead: %v", err)
			c.conn = nil
			conn.Close()
			c.mu.Unlock()
			return
		}

		c.mu.Unlock()
	}
}

func (c *engineClient) getConnection() (*websocket.Conn, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil, fmt.Errorf("not connected to face engine")
	}
	return c.conn, nil
}

// DetectFaces sends one binary JPEG frame and waits for the detection
// result. A transport failure invalidates the connection so the next call
// redials.
func (c *engineClient) DetectFaces(frame []byte) ([]entity.Face, error) {
	conn, err := c.getConnection()
	if err != nil {
		if err := c.Reconnect(); err != nil {
			return nil, fmt.Errorf("cannot connect to face engine: %w", err)
		}
		conn, err = c.getConnection()
		if err != nil {
			return nil, err
		}
	}

	c.mu.Lock()
	conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))

	if err := conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
		c.conn = nil
		conn.Close()
		c.mu.Unlock()
		return nil, fmt.Errorf("error sending frame: %w", err)
	}

	conn.SetReadDeadline(time.Now().Add(c.readTimeout))
	c.mu.Unlock()

	_, message, err := conn.ReadMessage()
	if err != nil {
		c.mu.Lock()
		c.conn = nil
		conn.Close()
		c.mu.Unlock()
		return nil, fmt.Errorf("error reading detection result: %w", err)
	}

	c.mu.Lock()
	conn.SetReadDeadline(time.Time{})
	conn.SetWriteDeadline(time.Time{})
	c.mu.Unlock()

	var result detectWire
	if err := json.Unmarshal(message, &result); err != nil {
		return nil, fmt.Errorf("error parsing detection result: %w", err)
	}
	if result.Error != "" {
		return nil, fmt.Errorf("face engine error: %s", result.Error)
	}

	faces := make([]entity.Face, 0, len(result.Faces))
	for _, w := range result.Faces {
		face := entity.Face{
			Age:        w.Age,
			Gender:     w.Gender,
			Confidence: w.DetScore,
			Embedding:  w.Embedding,
		}
		if len(w.BBox) == 4 {
			face.BBox = [4]int{w.BBox[0], w.BBox[1], w.BBox[2], w.BBox[3]}
		}
		faces = append(faces, face)
	}

	return faces, nil
}
