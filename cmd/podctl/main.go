package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"time"

	"podservice/internal/entities"
	"podservice/internal/pkg/camera"
	"podservice/internal/pkg/preview"
	"podservice/internal/workflow"
	"podservice/internal/workflow/capture"
	"podservice/internal/workflow/commit"
	"podservice/internal/workflow/navigator"
	"podservice/internal/workflow/scanner"
	"podservice/pkg/logger"
	"podservice/pkg/logger/zap_adapter"
)

// podctl прогоняет полный цикл фиксации доставки с устройства курьера:
// Home -> Scan -> Capture -> Success. Камера эмулируется скриптом кадров,
// коммит уходит на pod-service по HTTP.
func main() {
	var (
		serverURL  = flag.String("server", "http://localhost:8080", "pod-service base URL")
		awbNumber  = flag.String("awb", "", "AWB number for manual entry (skips camera)")
		scanScript = flag.String("scan-script", "", "comma-separated camera frames, empty frame = miss")
		mediaPath  = flag.String("media", "", "path to proof-of-delivery photo or video")
		notes      = flag.String("notes", "", "driver notes")
		timeout    = flag.Duration("timeout", 30*time.Second, "commit timeout")
	)
	flag.Parse()

	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var log logger.Logger = zapLogger

	if *mediaPath == "" {
		log.Error("media path is required (-media)")
		os.Exit(1)
	}
	if *awbNumber == "" && *scanScript == "" {
		log.Error("either -awb or -scan-script is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, log, *serverURL, *awbNumber, *scanScript, *mediaPath, *notes); err != nil {
		log.Error("delivery flow failed", logger.NewField("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log logger.Logger, serverURL, awbNumber, scanScript, mediaPath, notes string) error {
	// Уведомления автоматов печатаем курьеру как есть.
	notify := workflow.NotifierFunc(func(e workflow.Event) {
		if e.Message != "" {
			fmt.Println(e.Message)
		}
	})

	cam := camera.NewScripted(splitScript(scanScript))

	nav := buildFlow(log, cam, notes, notify, &httpCommit{
		client:    &http.Client{},
		serverURL: strings.TrimRight(serverURL, "/"),
	})

	if err := nav.StartFlow(); err != nil {
		return fmt.Errorf("start flow: %w", err)
	}

	if awbNumber != "" {
		if _, err := nav.Scanner().SubmitManual(awbNumber); err != nil {
			return fmt.Errorf("manual entry: %w", err)
		}
	} else {
		if err := nav.Scanner().StartScanning(ctx); err != nil {
			return fmt.Errorf("scan: %w", err)
		}
		if err := waitForStep(ctx, nav.Navigator, navigator.StepCapture); err != nil {
			return fmt.Errorf("waiting for scan result: %w", err)
		}
	}

	blob, err := readMediaFile(mediaPath)
	if err != nil {
		return fmt.Errorf("read media: %w", err)
	}
	if _, err := nav.Buffer().Capture(blob); err != nil {
		return fmt.Errorf("capture media: %w", err)
	}

	record, err := nav.Navigator.Submit(ctx)
	if err != nil {
		return fmt.Errorf("submit delivery: %w", err)
	}

	log.With(
		logger.NewField("record_id", record.ID),
		logger.NewField("awb_number", record.AWBNumber),
		logger.NewField("media_url", record.MediaURL),
	).Info("delivery recorded")
	return nil
}

// deviceFlow связывает навигатор с его шагами для ручного прогона.
type deviceFlow struct {
	*navigator.Navigator

	scanner *scanner.Scanner
	buffer  *capture.Buffer
}

func (f *deviceFlow) Scanner() *scanner.Scanner { return f.scanner }
func (f *deviceFlow) Buffer() *capture.Buffer   { return f.buffer }

func buildFlow(log logger.Logger, cam scanner.Camera, notes string, notify workflow.Notifier, committer navigator.CommitService) *deviceFlow {
	buffer := capture.New(log, preview.NewFactory(""), notify)

	var nav *navigator.Navigator
	scan := scanner.New(log, cam, func(awbNumber string) {
		nav.OnIdentifier(awbNumber)
		if session := nav.Session(); session != nil {
			session.SetNotes(notes)
		}
	}, notify, scanner.Config{})

	nav = navigator.New(log, scan, buffer, committer, notify)

	return &deviceFlow{
		Navigator: nav,
		scanner:   scan,
		buffer:    buffer,
	}
}

func waitForStep(ctx context.Context, nav *navigator.Navigator, step navigator.Step) error {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		if nav.Step() == step {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func splitScript(script string) []string {
	if script == "" {
		return nil
	}
	frames := strings.Split(script, ",")
	for i := range frames {
		frames[i] = strings.TrimSpace(frames[i])
	}
	return frames
}

func readMediaFile(path string) (entities.MediaBlob, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return entities.MediaBlob{}, err
	}

	return entities.MediaBlob{
		Name: filepath.Base(path),
		MIME: mimeByExt(path),
		Data: data,
	}, nil
}

func mimeByExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp4":
		return "video/mp4"
	case ".webm":
		return "video/webm"
	case ".png":
		return "image/png"
	default:
		return "image/jpeg"
	}
}

// httpCommit отправляет коммит на pod-service одним multipart-запросом.
// Статусная машина сессии обслуживается локально, как в commit.Pipeline.
type httpCommit struct {
	client    *http.Client
	serverURL string
}

func (c *httpCommit) Submit(ctx context.Context, session *workflow.Session, media *entities.CapturedMedia) (*entities.DeliveryRecord, error) {
	if session == nil || strings.TrimSpace(session.AWBNumber()) == "" || media == nil {
		return nil, commit.ErrMissingInput
	}
	if !session.TryBeginCommit() {
		return nil, commit.ErrCommitInFlight
	}

	record, err := c.post(ctx, session, media)
	if err != nil {
		session.Fail()
		return nil, err
	}

	session.Complete()
	return record, nil
}

func (c *httpCommit) post(ctx context.Context, session *workflow.Session, media *entities.CapturedMedia) (*entities.DeliveryRecord, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if err := writer.WriteField("awb_number", session.AWBNumber()); err != nil {
		return nil, fmt.Errorf("write awb_number field: %w", err)
	}
	if notes := session.Notes(); notes != "" {
		if err := writer.WriteField("notes", notes); err != nil {
			return nil, fmt.Errorf("write notes field: %w", err)
		}
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="media"; filename=%q`, media.Blob.Name))
	header.Set("Content-Type", media.Blob.MIME)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("create media part: %w", err)
	}
	if _, err = part.Write(media.Blob.Data); err != nil {
		return nil, fmt.Errorf("write media part: %w", err)
	}
	if err = writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.serverURL+"/delivery/pod", body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", commit.ErrUpload, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		payload, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status %d: %s", commit.ErrRecord, resp.StatusCode, payload)
	}

	var dto struct {
		ID          string    `json:"id"`
		AWBNumber   string    `json:"awb_number"`
		MediaURL    string    `json:"media_url"`
		MediaType   string    `json:"media_type"`
		DriverNotes *string   `json:"driver_notes"`
		DeliveredAt time.Time `json:"delivered_at"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &entities.DeliveryRecord{
		ID:          dto.ID,
		AWBNumber:   dto.AWBNumber,
		MediaURL:    dto.MediaURL,
		MediaType:   entities.MediaType(dto.MediaType),
		DriverNotes: dto.DriverNotes,
		DeliveredAt: dto.DeliveredAt,
	}, nil
}
