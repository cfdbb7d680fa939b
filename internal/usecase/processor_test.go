package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"resume-normalizer/internal/domain"
	"resume-normalizer/internal/model"
	"resume-normalizer/internal/usecase"
	"resume-normalizer/pkg/linkedin"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Profile(ctx context.Context, publicID string) (*linkedin.Profile, error) {
	args := m.Called(ctx, publicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*linkedin.Profile), args.Error(1)
}

func (m *MockFetcher) ContactInfo(ctx context.Context, publicID string) (*linkedin.ContactInfo, error) {
	args := m.Called(ctx, publicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*linkedin.ContactInfo), args.Error(1)
}

type MockHTMLRenderer struct {
	mock.Mock
}

func (m *MockHTMLRenderer) Render(r *model.Resume) (string, error) {
	args := m.Called(r)
	return args.String(0), args.Error(1)
}

type MockPDFRenderer struct {
	mock.Mock
}

func (m *MockPDFRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	args := m.Called(ctx, html)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockRepo struct {
	mock.Mock
}

func (m *MockRepo) Save(ctx context.Context, j *domain.NormalizeJob) error {
	return m.Called(ctx, j).Error(0)
}

func newJob() *domain.NormalizeJob {
	return &domain.NormalizeJob{
		ID:        uuid.New(),
		PublicID:  "ada",
		Status:    "pending",
		Metadata:  map[string]interface{}{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestProcessHappyPath(t *testing.T) {
	fetcher := &MockFetcher{}
	htmlr := &MockHTMLRenderer{}
	pdfr := &MockPDFRenderer{}
	repo := &MockRepo{}

	fetcher.On("Profile", mock.Anything, "ada").Return(&linkedin.Profile{FirstName: "Ada"}, nil)
	fetcher.On("ContactInfo", mock.Anything, "ada").Return(&linkedin.ContactInfo{EmailAddress: "ada@example.com"}, nil)
	htmlr.On("Render", mock.Anything).Return("<html><body>ok</body></html>", nil)
	pdfr.On("RenderHTMLToPDF", mock.Anything, mock.Anything).Return([]byte("%PDF-1.7 fake"), nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	p := usecase.NewProcessor(fetcher, htmlr, pdfr, repo, t.TempDir(), 3)
	job := newJob()

	require.NoError(t, p.Process(context.Background(), job))

	assert.Equal(t, "completed", job.Status)
	require.NotNil(t, job.Resume)
	assert.Equal(t, "Ada", job.Resume.Basics.Name)
	assert.Equal(t, "ada@example.com", job.Resume.Basics.Email)
	assert.NotEmpty(t, job.Metadata["generated_json"])
	assert.NotEmpty(t, job.Metadata["generated_html"])
	assert.NotEmpty(t, job.Metadata["generated_pdf"])
	repo.AssertCalled(t, "Save", mock.Anything, job)
}

func TestProcessFetchFailureFailsJob(t *testing.T) {
	fetcher := &MockFetcher{}
	repo := &MockRepo{}

	fetcher.On("Profile", mock.Anything, "ada").Return(nil, errors.New("upstream down"))
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	p := usecase.NewProcessor(fetcher, &MockHTMLRenderer{}, &MockPDFRenderer{}, repo, t.TempDir(), 3)
	job := newJob()

	err := p.Process(context.Background(), job)
	require.Error(t, err)
	assert.Equal(t, "failed", job.Status)
	assert.Contains(t, job.Metadata["error"], "upstream down")
}

func TestProcessContactInfoFailureIsAWarning(t *testing.T) {
	fetcher := &MockFetcher{}
	htmlr := &MockHTMLRenderer{}
	pdfr := &MockPDFRenderer{}

	fetcher.On("Profile", mock.Anything, "ada").Return(&linkedin.Profile{FirstName: "Ada"}, nil)
	fetcher.On("ContactInfo", mock.Anything, "ada").Return(nil, errors.New("forbidden"))
	htmlr.On("Render", mock.Anything).Return("<html></html>", nil)
	pdfr.On("RenderHTMLToPDF", mock.Anything, mock.Anything).Return([]byte("%PDF-1.7"), nil)

	p := usecase.NewProcessor(fetcher, htmlr, pdfr, nil, t.TempDir(), 3)
	job := newJob()

	require.NoError(t, p.Process(context.Background(), job))
	assert.Equal(t, "completed", job.Status)
	require.NotEmpty(t, job.Warnings)
	assert.Contains(t, job.Warnings[0], "contact info unavailable")
}

func TestProcessPDFFailureKeepsHTMLArtifact(t *testing.T) {
	fetcher := &MockFetcher{}
	htmlr := &MockHTMLRenderer{}
	pdfr := &MockPDFRenderer{}

	fetcher.On("Profile", mock.Anything, "ada").Return(&linkedin.Profile{FirstName: "Ada"}, nil)
	fetcher.On("ContactInfo", mock.Anything, "ada").Return(nil, nil)
	htmlr.On("Render", mock.Anything).Return("<html></html>", nil)
	pdfr.On("RenderHTMLToPDF", mock.Anything, mock.Anything).Return(nil, errors.New("chrome crashed"))

	p := usecase.NewProcessor(fetcher, htmlr, pdfr, nil, t.TempDir(), 1)
	job := newJob()

	require.NoError(t, p.Process(context.Background(), job))
	assert.Equal(t, "completed", job.Status)
	assert.NotEmpty(t, job.Metadata["generated_html"])
	assert.Equal(t, "", job.Metadata["generated_pdf"])
	assert.Contains(t, job.Metadata["pdf_render_error"], "chrome crashed")
}
