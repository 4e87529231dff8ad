package consumer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/Xushengqwer/article_service/config"
	"github.com/Xushengqwer/article_service/models/entities"
	"github.com/Xushengqwer/article_service/models/enums"
	"github.com/Xushengqwer/article_service/mq"
	"github.com/Xushengqwer/article_service/repo/mysql"
	"github.com/Xushengqwer/article_service/service"
	"github.com/Xushengqwer/article_service/testutil"
)

// chanReader 从通道读取消息，通道读空后阻塞到 ctx 取消
type chanReader struct {
	msgs chan kafka.Message
	errs []error
	mu   sync.Mutex
}

func (r *chanReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	if len(r.errs) > 0 {
		err := r.errs[0]
		r.errs = r.errs[1:]
		r.mu.Unlock()
		return kafka.Message{}, err
	}
	r.mu.Unlock()
	select {
	case msg := <-r.msgs:
		return msg, nil
	case <-ctx.Done():
		return kafka.Message{}, ctx.Err()
	}
}

func (r *chanReader) Close() error { return nil }

type recordingHandler struct {
	mu   sync.Mutex
	seen []string
	done chan struct{}
	want int
}

func (h *recordingHandler) Handle(_ context.Context, msg kafka.Message) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.seen = append(h.seen, string(msg.Value))
	if len(h.seen) == h.want {
		close(h.done)
	}
	return errors.New("handler errors are only logged")
}

func TestConsumer_StartProcessesUntilCancelled(t *testing.T) {
	reader := &chanReader{msgs: make(chan kafka.Message, 2), errs: []error{errors.New("transient")}}
	reader.msgs <- kafka.Message{Value: []byte("one")}
	reader.msgs <- kafka.Message{Value: []byte("two")}
	handler := &recordingHandler{done: make(chan struct{}), want: 2}

	c := newConsumer(reader, "comment-events", handler, testutil.NewLogger(t))
	c.retryDelay = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		c.Start(ctx)
		close(stopped)
	}()

	select {
	case <-handler.done:
	case <-time.After(2 * time.Second):
		t.Fatal("消息未被处理")
	}
	cancel()
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("消费者未退出")
	}
	assert.Equal(t, []string{"one", "two"}, handler.seen)
	assert.NoError(t, c.Close())
}

func TestNewConsumer_Validation(t *testing.T) {
	logger := testutil.NewLogger(t)
	_, err := NewConsumer(&config.KafkaConfig{Brokers: []string{"localhost:9092"}}, "g", "", nil, logger)
	assert.Error(t, err)
	_, err = NewConsumer(&config.KafkaConfig{}, "g", "comment-events", nil, logger)
	assert.Error(t, err)
}

func TestCommentEventHandler(t *testing.T) {
	logger := testutil.NewLogger(t)
	db := testutil.NewTestDB(t)
	postRepo := mysql.NewPostRepository(db, logger)
	h := NewCommentEventHandler(logger, service.NewCommentCountService(db, postRepo, logger))
	ctx := context.Background()

	post := &entities.Post{AuthorID: "u1", Title: "commented", Visibility: enums.VisibilityPublic, Status: enums.StatusPublished}
	require.NoError(t, postRepo.CreatePost(ctx, db, post))

	for _, body := range []string{
		`{"post_id":"` + post.ID + `","event_type":"COMMENT_CREATED"}`,
		`{"post_id":"` + post.ID + `","event_type":"COMMENT_CREATED"}`,
		`{"post_id":"` + post.ID + `","event_type":"COMMENT_DELETED"}`,
		`{"post_id":"` + post.ID + `","event_type":"COMMENT_LIKED"}`,
		`{"post_id":"missing","event_type":"COMMENT_CREATED"}`,
		`{"event_type":"COMMENT_CREATED"}`,
		`not json`,
	} {
		assert.NoError(t, h.Handle(ctx, kafka.Message{Value: []byte(body)}), body)
	}

	got, err := postRepo.GetPostByID(ctx, db, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.CommentCount)
}

type ctxHandler struct {
	ctxs chan context.Context
}

func (h ctxHandler) Handle(ctx context.Context, _ kafka.Message) error {
	h.ctxs <- ctx
	return nil
}

func TestConsumer_ContinuesTraceFromHeaders(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr)))
	otel.SetTextMapPropagator(propagation.TraceContext{})

	parent := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{1, 2, 3},
		SpanID:     trace.SpanID{4, 5, 6},
		TraceFlags: trace.FlagsSampled,
		Remote:     true,
	})
	msg := kafka.Message{Value: []byte("{}"), Offset: 42}
	otel.GetTextMapPropagator().Inject(trace.ContextWithRemoteSpanContext(context.Background(), parent), mq.HeaderCarrier{Headers: &msg.Headers})
	require.NotEmpty(t, mq.HeaderCarrier{Headers: &msg.Headers}.Get("traceparent"))

	h := ctxHandler{ctxs: make(chan context.Context, 1)}
	c := newConsumer(&chanReader{msgs: make(chan kafka.Message)}, "comment-events", h, testutil.NewLogger(t))
	c.handle(context.Background(), msg)

	got := trace.SpanContextFromContext(<-h.ctxs)
	assert.Equal(t, parent.TraceID(), got.TraceID())

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "kafka.consume", spans[0].Name())
	assert.Equal(t, parent.SpanID(), spans[0].Parent().SpanID())
}
