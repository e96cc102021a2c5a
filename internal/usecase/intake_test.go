package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katyavamnada-beep/casting-bot/internal/domain"
)

type fakeSessions struct{ m map[int64]*Session }

func newFakeSessions() *fakeSessions { return &fakeSessions{m: map[int64]*Session{}} }

func (f *fakeSessions) Get(chatID int64) *Session {
	if s, ok := f.m[chatID]; ok {
		return s
	}
	s := &Session{Step: StepIdle}
	f.m[chatID] = s
	return s
}

func (f *fakeSessions) Clear(chatID int64) { delete(f.m, chatID) }

type fakeApps struct {
	exists    bool
	existsErr error
	appendErr error
	appended  []domain.Application
}

func (f *fakeApps) NameExists(ctx context.Context, date, name string) (bool, error) {
	return f.exists, f.existsErr
}

func (f *fakeApps) Append(ctx context.Context, app domain.Application) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appended = append(f.appended, app)
	return nil
}

type fakeUploader struct {
	ref   string
	err   error
	calls int
}

func (f *fakeUploader) Upload(ctx context.Context, fileID, filename string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.ref, nil
}

func testIntake(t *testing.T) (*Intake, *fakeSessions, *fakeApps, *fakeUploader) {
	sessions := newFakeSessions()
	apps := &fakeApps{}
	photos := &fakeUploader{ref: "https://drive.example/photo"}
	i := NewIntake(sessions, apps, photos, IntakeOptions{
		ShootDates:  []string{"10.01.2026", "11.01.2026"},
		TimeSlots:   []string{"10:20", "11:00"},
		PhonePrefix: "380",
		PhoneDigits: 9,
	}, zaptest.NewLogger(t))
	i.now = func() time.Time { return time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC) }
	return i, sessions, apps, photos
}

const chat = int64(100500)

func walk(t *testing.T, i *Intake, inputs ...Input) Reply {
	t.Helper()
	var last Reply
	for _, in := range inputs {
		last = i.Handle(context.Background(), chat, in)
	}
	return last
}

func text(s string) Input { return Input{Text: s} }

func TestIntakeHappyPathSkipAddressAdult(t *testing.T) {
	i, sessions, apps, _ := testIntake(t)

	last := walk(t, i,
		text(BtnApply),
		text("10.01.2026"),
		text("10:20"),
		text("Anna Ivanova"),
		text("17.05.1994"),
		text("ДАЛІ"),
		text("380931111111"),
		text("anna@example.com"),
		text(BtnNo),
		Input{PhotoFileID: "file-1"},
		text(BtnConsent),
	)

	assert.True(t, last.Done)
	require.Len(t, apps.appended, 1)
	app := apps.appended[0]
	assert.Equal(t, "10.01.2026", app.ShootDate)
	assert.Equal(t, "10:20", app.ShootTime)
	assert.Equal(t, "Anna Ivanova", app.ModelName)
	assert.Equal(t, "17.05.1994", app.DateOfBirth)
	assert.Empty(t, app.Address)
	assert.Empty(t, app.City)
	assert.Equal(t, "380931111111", app.Phone)
	assert.Equal(t, "anna@example.com", app.Email)
	assert.False(t, app.IsMinor)
	assert.Empty(t, app.Guardian)
	assert.Equal(t, "https://drive.example/photo", app.PhotoRef)
	assert.True(t, app.Consent)
	assert.Equal(t, chat, app.ChatID)
	assert.False(t, app.SubmittedAt.IsZero())

	// после подачи сессия чистая
	assert.Equal(t, StepIdle, sessions.Get(chat).Step)
}

func TestIntakeAddressAndCity(t *testing.T) {
	i, sessions, _, _ := testIntake(t)

	walk(t, i,
		text(BtnApply),
		text("10.01.2026"),
		text("10:20"),
		text("Ivan Petrenko"),
		text("17.05.1994"),
		text("12 Main St."),
	)
	s := sessions.Get(chat)
	assert.Equal(t, StepCity, s.Step)
	assert.Equal(t, "12 Main St.", s.Draft.Address)

	reply := walk(t, i, text("Kyiv"))
	assert.Equal(t, StepPhone, reply.Step)
	assert.Equal(t, "Kyiv", s.Draft.City)
}

func TestIntakeMinorBranch(t *testing.T) {
	i, sessions, _, _ := testIntake(t)

	reply := walk(t, i,
		text(BtnApply),
		text("10.01.2026"),
		text("10:20"),
		text("Ivan Petrenko"),
		text("17.05.2012"),
		text("ДАЛІ"),
		text("380931111111"),
		text("ivan@example.com"),
		text(BtnYes),
	)
	assert.Equal(t, StepGuardian, reply.Step)

	reply = walk(t, i, text("Olena Petrenko"))
	assert.Equal(t, StepPhoto, reply.Step)
	s := sessions.Get(chat)
	assert.True(t, s.Draft.IsMinor)
	assert.Equal(t, "Olena Petrenko", s.Draft.Guardian)
}

func TestIntakeInvalidInputKeepsStepAndDraft(t *testing.T) {
	i, sessions, _, _ := testIntake(t)

	walk(t, i, text(BtnApply), text("10.01.2026"), text("10:20"))
	before := *sessions.Get(chat)

	for _, bad := range []string{"Іван", "", "   ", "@@@"} {
		reply := walk(t, i, text(bad))
		assert.Equal(t, StepName, reply.Step, "bad=%q", bad)
	}
	assert.Equal(t, before, *sessions.Get(chat))
}

func TestIntakeSameAnswerTwiceDoesNotDoubleAdvance(t *testing.T) {
	i, sessions, _, _ := testIntake(t)

	walk(t, i, text(BtnApply), text("10.01.2026"))
	assert.Equal(t, StepTime, sessions.Get(chat).Step)

	// повторная доставка того же ответа: дата не входит в слоты времени,
	// шаг и черновик не меняются
	reply := walk(t, i, text("10.01.2026"))
	assert.Equal(t, StepTime, reply.Step)
	assert.Equal(t, "10.01.2026", sessions.Get(chat).Draft.ShootDate)
	assert.Empty(t, sessions.Get(chat).Draft.ShootTime)
}

func TestIntakeDuplicateNameRePrompts(t *testing.T) {
	i, sessions, apps, _ := testIntake(t)
	apps.exists = true

	reply := walk(t, i,
		text(BtnApply),
		text("10.01.2026"),
		text("10:20"),
		text("Anna Ivanova"),
	)
	assert.Equal(t, StepName, reply.Step)
	s := sessions.Get(chat)
	assert.Empty(t, s.Draft.ModelName)
	// выбранные дата и время не теряются
	assert.Equal(t, "10.01.2026", s.Draft.ShootDate)

	apps.exists = false
	reply = walk(t, i, text("Anna I. Ivanova"))
	assert.Equal(t, StepDOB, reply.Step)
	assert.Equal(t, "Anna I. Ivanova", s.Draft.ModelName)
}

func TestIntakeDuplicateCheckFailsOpen(t *testing.T) {
	i, _, apps, _ := testIntake(t)
	apps.existsErr = errors.New("sheet unreachable")

	reply := walk(t, i,
		text(BtnApply),
		text("10.01.2026"),
		text("10:20"),
		text("Anna Ivanova"),
	)
	assert.Equal(t, StepDOB, reply.Step)
}

func TestIntakeUploadFailureHoldsStep(t *testing.T) {
	i, sessions, _, photos := testIntake(t)
	photos.err = errors.New("drive down")

	reply := walk(t, i,
		text(BtnApply),
		text("10.01.2026"),
		text("10:20"),
		text("Anna Ivanova"),
		text("17.05.1994"),
		text("ДАЛІ"),
		text("380931111111"),
		text("anna@example.com"),
		text(BtnNo),
		Input{PhotoFileID: "file-1"},
	)
	assert.Equal(t, StepPhoto, reply.Step)
	assert.Empty(t, sessions.Get(chat).Draft.PhotoRef)

	photos.err = nil
	reply = walk(t, i, Input{PhotoFileID: "file-1"})
	assert.Equal(t, StepConsent, reply.Step)
	assert.Equal(t, "https://drive.example/photo", sessions.Get(chat).Draft.PhotoRef)
	assert.Equal(t, 2, photos.calls)
}

func TestIntakeNonPhotoAtPhotoStep(t *testing.T) {
	i, _, _, photos := testIntake(t)

	reply := walk(t, i,
		text(BtnApply),
		text("10.01.2026"),
		text("10:20"),
		text("Anna Ivanova"),
		text("17.05.1994"),
		text("ДАЛІ"),
		text("380931111111"),
		text("anna@example.com"),
		text(BtnNo),
		text("ось фото"),
	)
	assert.Equal(t, StepPhoto, reply.Step)
	assert.Zero(t, photos.calls)
}

func TestIntakeCommitFailureKeepsSession(t *testing.T) {
	i, sessions, apps, _ := testIntake(t)
	apps.appendErr = domain.ErrStoreUnavailable

	reply := walk(t, i,
		text(BtnApply),
		text("10.01.2026"),
		text("10:20"),
		text("Anna Ivanova"),
		text("17.05.1994"),
		text("ДАЛІ"),
		text("380931111111"),
		text("anna@example.com"),
		text(BtnNo),
		Input{PhotoFileID: "file-1"},
		text(BtnConsent),
	)
	assert.Equal(t, StepConsent, reply.Step)
	assert.False(t, reply.Done)
	// черновик цел, можно повторить без повторного ввода
	assert.Equal(t, "Anna Ivanova", sessions.Get(chat).Draft.ModelName)

	apps.appendErr = nil
	reply = walk(t, i, text(BtnConsent))
	assert.True(t, reply.Done)
	assert.Len(t, apps.appended, 1)
}

func TestIntakeStartDiscardsDraft(t *testing.T) {
	i, sessions, _, _ := testIntake(t)

	walk(t, i, text(BtnApply), text("10.01.2026"), text("10:20"), text("Anna Ivanova"))
	walk(t, i, text("/start"))
	s := sessions.Get(chat)
	assert.Equal(t, StepIdle, s.Step)
	assert.Empty(t, s.Draft.ModelName)
}

func TestPhotoFilename(t *testing.T) {
	d := domain.Draft{ShootDate: "10.01.2026", ShootTime: "10:20", ModelName: "Anna I. Ivanova"}
	assert.Equal(t, "10.01.2026_10:20_Anna_I_Ivanova.jpg", photoFilename(d))
}
