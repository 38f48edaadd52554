package invoice

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-docs/internal/core/domain/models"
)

type fakeBranding struct {
	branding models.Branding
	err      error
	calls    int
}

func (f *fakeBranding) GetBranding(ctx context.Context, websiteID string) (models.Branding, error) {
	f.calls++
	if f.err != nil {
		return models.Branding{}, f.err
	}
	return f.branding, nil
}

type fakeImages struct {
	data  []byte
	err   error
	calls int
}

func (f *fakeImages) FetchImage(ctx context.Context, url string) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.data, nil
}

type fakeEvents struct {
	published []models.InvoiceGenerated
	err       error
}

func (f *fakeEvents) PublishInvoiceGenerated(ctx context.Context, event models.InvoiceGenerated) error {
	f.published = append(f.published, event)
	return f.err
}

func testPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))))
	return buf.Bytes()
}

func TestGenerateNilOrderAborts(t *testing.T) {
	branding := &fakeBranding{}
	images := &fakeImages{}
	svc := NewService(branding, images, nil, "1")

	doc, err := svc.Generate(context.Background(), nil)

	assert.ErrorIs(t, err, models.ErrorNoOrderData)
	assert.Empty(t, doc.Filename)
	assert.Empty(t, doc.Content)
	// aborted before any side effect
	assert.Zero(t, branding.calls)
	assert.Zero(t, images.calls)
}

func TestGenerateEmptyItems(t *testing.T) {
	svc := NewService(&fakeBranding{}, &fakeImages{}, nil, "1")

	order := penOrder()
	order.Items = nil

	doc, err := svc.Generate(context.Background(), &order)

	require.NoError(t, err)
	assert.Equal(t, "Invoice_ORD_42.pdf", doc.Filename)
	assert.True(t, bytes.HasPrefix(doc.Content, []byte("%PDF-")))
}

func TestGenerateNoLogoConfiguredSkipsFetch(t *testing.T) {
	images := &fakeImages{}
	svc := NewService(&fakeBranding{branding: models.Branding{Name: "Stationery Co"}}, images, nil, "1")

	order := penOrder()
	_, err := svc.Generate(context.Background(), &order)

	require.NoError(t, err)
	assert.Zero(t, images.calls)
}

func TestGenerateLogoUnreachableFallsBackToText(t *testing.T) {
	branding := &fakeBranding{branding: models.Branding{
		Name:    "Stationery Co",
		LogoURL: "http://cdn.example/logo.png",
	}}
	images := &fakeImages{err: errors.New("connection refused")}
	svc := NewService(branding, images, nil, "1")

	order := penOrder()
	doc, err := svc.Generate(context.Background(), &order)

	require.NoError(t, err)
	assert.Equal(t, 1, images.calls)
	assert.True(t, bytes.HasPrefix(doc.Content, []byte("%PDF-")))
}

func TestGenerateEmbedsFetchedLogo(t *testing.T) {
	branding := &fakeBranding{branding: models.Branding{
		Name:    "Stationery Co",
		LogoURL: "http://cdn.example/logo.png",
	}}
	images := &fakeImages{data: testPNG(t, 120, 40)}
	svc := NewService(branding, images, nil, "1")

	order := penOrder()
	doc, err := svc.Generate(context.Background(), &order)

	require.NoError(t, err)
	assert.Equal(t, 1, images.calls)
	assert.True(t, bytes.HasPrefix(doc.Content, []byte("%PDF-")))
}

func TestGenerateBrandingUnavailable(t *testing.T) {
	branding := &fakeBranding{err: errors.New("backend returned 503")}
	images := &fakeImages{}
	svc := NewService(branding, images, nil, "1")

	order := penOrder()
	doc, err := svc.Generate(context.Background(), &order)

	require.NoError(t, err)
	// no branding means no logo URL, so no image fetch either
	assert.Zero(t, images.calls)
	assert.Equal(t, "Invoice_ORD_42.pdf", doc.Filename)
}

func TestGenerateFetchesBrandingPerCall(t *testing.T) {
	branding := &fakeBranding{branding: models.Branding{Name: "Stationery Co"}}
	svc := NewService(branding, &fakeImages{}, nil, "1")

	order := penOrder()
	_, err := svc.Generate(context.Background(), &order)
	require.NoError(t, err)
	_, err = svc.Generate(context.Background(), &order)
	require.NoError(t, err)

	assert.Equal(t, 2, branding.calls)
}

func TestGenerateSemanticIdempotence(t *testing.T) {
	svc := NewService(&fakeBranding{branding: models.Branding{Name: "Stationery Co"}}, &fakeImages{}, nil, "1")

	order := penOrder()
	first, err := svc.Generate(context.Background(), &order)
	require.NoError(t, err)
	second, err := svc.Generate(context.Background(), &order)
	require.NoError(t, err)

	assert.Equal(t, first.Filename, second.Filename)
	// rendered content is fully determined by the layout; the binary
	// encoding may embed timestamps, so equality is checked there
	assert.Equal(t,
		buildLayout(order, models.Branding{Name: "Stationery Co"}),
		buildLayout(order, models.Branding{Name: "Stationery Co"}),
	)
}

func TestGeneratePublishesEvent(t *testing.T) {
	events := &fakeEvents{}
	svc := NewService(&fakeBranding{}, &fakeImages{}, events, "1")

	order := penOrder()
	doc, err := svc.Generate(context.Background(), &order)

	require.NoError(t, err)
	require.Len(t, events.published, 1)
	assert.Equal(t, "42", events.published[0].OrderNumber)
	assert.Equal(t, doc.Filename, events.published[0].Filename)
	assert.Equal(t, "7.00", events.published[0].TotalAmount)
}

func TestGeneratePublishFailureIsNonFatal(t *testing.T) {
	events := &fakeEvents{err: errors.New("broker unavailable")}
	svc := NewService(&fakeBranding{}, &fakeImages{}, events, "1")

	order := penOrder()
	doc, err := svc.Generate(context.Background(), &order)

	require.NoError(t, err)
	assert.NotEmpty(t, doc.Content)
}
