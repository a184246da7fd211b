package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"yatra/internal/models"
	"yatra/internal/repositories/interfaces"
	"yatra/pkg/logger"
	"yatra/pkg/payment"
	"yatra/pkg/storage"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Format: "text", Output: "stdout"})
	require.NoError(t, err)
	return log
}

type fakeUserRepo struct {
	users []*models.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, interfaces.ErrNotFound
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, interfaces.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, interfaces.ErrNotFound
}

func (f *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := f.GetByUsername(ctx, username)
	return err == nil, nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	return err == nil, nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	user, err := f.GetByID(ctx, id)
	if err != nil {
		return err
	}
	user.Password = passwordHash
	return nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]*models.User, error) {
	return f.users, nil
}

type fakeProfileRepo struct {
	profiles []*models.Profile
}

func (f *fakeProfileRepo) Create(ctx context.Context, profile *models.Profile) error {
	for _, p := range f.profiles {
		if p.UserID == profile.UserID {
			return interfaces.ErrDuplicateKey
		}
	}
	profile.ID = primitive.NewObjectID()
	f.profiles = append(f.profiles, profile)
	return nil
}

func (f *fakeProfileRepo) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Profile, error) {
	for _, p := range f.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, interfaces.ErrNotFound
}

func (f *fakeProfileRepo) UpdateImage(ctx context.Context, userID primitive.ObjectID, imageURL string) error {
	profile, err := f.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	profile.ProfileImage = imageURL
	return nil
}

type fakeVehicleRepo struct {
	vehicles []*models.Vehicle
}

func (f *fakeVehicleRepo) Create(ctx context.Context, vehicle *models.Vehicle) error {
	vehicle.ID = primitive.NewObjectID()
	f.vehicles = append(f.vehicles, vehicle)
	return nil
}

func (f *fakeVehicleRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error) {
	for _, v := range f.vehicles {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, interfaces.ErrNotFound
}

func (f *fakeVehicleRepo) GetByIDAndOwner(ctx context.Context, id, ownerID primitive.ObjectID) (*models.Vehicle, error) {
	for _, v := range f.vehicles {
		if v.ID == id && v.UserID == ownerID {
			return v, nil
		}
	}
	return nil, interfaces.ErrNotFound
}

func (f *fakeVehicleRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	vehicle, err := f.GetByID(ctx, id)
	if err != nil {
		return err
	}
	for key, value := range updates {
		switch key {
		case "model":
			vehicle.Model = value.(string)
		case "location":
			vehicle.Location = value.(string)
		case "address":
			vehicle.Address = value.(string)
		case "phone_number":
			vehicle.PhoneNumber = value.(string)
		case "price":
			vehicle.Price = value.(float64)
		case "time_period":
			vehicle.TimePeriod = value.(string)
		case "vehicle_image":
			vehicle.VehicleImage = value.(string)
		case "license_document":
			vehicle.LicenseDocument = value.(string)
		case "is_available":
			vehicle.IsAvailable = value.(bool)
		case "is_approved":
			vehicle.IsApproved = value.(bool)
		}
	}
	return nil
}

func (f *fakeVehicleRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i, v := range f.vehicles {
		if v.ID == id {
			f.vehicles = append(f.vehicles[:i], f.vehicles[i+1:]...)
			return nil
		}
	}
	return interfaces.ErrNotFound
}

func (f *fakeVehicleRepo) GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Vehicle, error) {
	var result []*models.Vehicle
	for _, v := range f.vehicles {
		if v.UserID == ownerID {
			result = append(result, v)
		}
	}
	return result, nil
}

func (f *fakeVehicleRepo) ListAvailableApproved(ctx context.Context) ([]*models.Vehicle, error) {
	var result []*models.Vehicle
	for _, v := range f.vehicles {
		if v.IsApproved && v.IsAvailable {
			result = append(result, v)
		}
	}
	return result, nil
}

func (f *fakeVehicleRepo) ListPending(ctx context.Context) ([]*models.Vehicle, error) {
	var result []*models.Vehicle
	for _, v := range f.vehicles {
		if !v.IsApproved {
			result = append(result, v)
		}
	}
	return result, nil
}

// fakeFeedbackRepo returns feedback newest-first, like the Mongo
// implementation's sort.
type fakeFeedbackRepo struct {
	feedbacks []*models.Feedback
}

func (f *fakeFeedbackRepo) Create(ctx context.Context, feedback *models.Feedback) error {
	feedback.ID = primitive.NewObjectID()
	f.feedbacks = append(f.feedbacks, feedback)
	return nil
}

func (f *fakeFeedbackRepo) GetByVehicleID(ctx context.Context, vehicleID primitive.ObjectID) ([]*models.Feedback, error) {
	var result []*models.Feedback
	for i := len(f.feedbacks) - 1; i >= 0; i-- {
		if f.feedbacks[i].VehicleID == vehicleID {
			result = append(result, f.feedbacks[i])
		}
	}
	return result, nil
}

func (f *fakeFeedbackRepo) GetByVehicleIDs(ctx context.Context, vehicleIDs []primitive.ObjectID) ([]*models.Feedback, error) {
	ids := make(map[primitive.ObjectID]bool, len(vehicleIDs))
	for _, id := range vehicleIDs {
		ids[id] = true
	}
	var result []*models.Feedback
	for i := len(f.feedbacks) - 1; i >= 0; i-- {
		if ids[f.feedbacks[i].VehicleID] {
			result = append(result, f.feedbacks[i])
		}
	}
	return result, nil
}

type fakeNotificationRepo struct {
	notifications []*models.Notification
	createErr     error
}

func (f *fakeNotificationRepo) Create(ctx context.Context, notification *models.Notification) error {
	if f.createErr != nil {
		return f.createErr
	}
	notification.ID = primitive.NewObjectID()
	f.notifications = append(f.notifications, notification)
	return nil
}

func (f *fakeNotificationRepo) CreateMany(ctx context.Context, notifications []*models.Notification) error {
	for _, n := range notifications {
		if err := f.Create(ctx, n); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeNotificationRepo) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Notification, error) {
	var result []*models.Notification
	for i := len(f.notifications) - 1; i >= 0; i-- {
		if f.notifications[i].UserID == userID {
			result = append(result, f.notifications[i])
		}
	}
	return result, nil
}

func (f *fakeNotificationRepo) MarkRead(ctx context.Context, id, userID primitive.ObjectID) error {
	for _, n := range f.notifications {
		if n.ID == id && n.UserID == userID {
			n.IsRead = true
			return nil
		}
	}
	return interfaces.ErrNotFound
}

type fakePaymentRepo struct {
	payments []*models.Payment

	// existsMiss forces ExistsByTransactionID to report absence, simulating
	// a concurrent insert landing between the pre-check and the insert.
	existsMiss bool
}

func (f *fakePaymentRepo) Create(ctx context.Context, p *models.Payment) error {
	for _, existing := range f.payments {
		if existing.TransactionID == p.TransactionID {
			return interfaces.ErrDuplicateKey
		}
	}
	p.ID = primitive.NewObjectID()
	f.payments = append(f.payments, p)
	return nil
}

func (f *fakePaymentRepo) ExistsByTransactionID(ctx context.Context, transactionID string) (bool, error) {
	if f.existsMiss {
		return false, nil
	}
	for _, p := range f.payments {
		if p.TransactionID == transactionID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePaymentRepo) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Payment, error) {
	var result []*models.Payment
	for i := len(f.payments) - 1; i >= 0; i-- {
		if f.payments[i].UserID == userID {
			result = append(result, f.payments[i])
		}
	}
	return result, nil
}

type fakeGateway struct {
	response *payment.LookupResponse
	err      error
	calls    int
}

func (f *fakeGateway) LookupPayment(ctx context.Context, pidx string) (*payment.LookupResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

type sentMail struct {
	to      string
	subject string
}

type fakeMailer struct {
	sent    []sentMail
	sendErr error
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, body string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject})
	return nil
}

func (f *fakeMailer) SendHTML(ctx context.Context, to, subject, textBody, htmlBody string) error {
	return f.Send(ctx, to, subject, textBody)
}

type fakeStorage struct {
	uploaded []string
}

func (f *fakeStorage) Upload(ctx context.Context, request *storage.UploadRequest) (*storage.UploadResponse, error) {
	f.uploaded = append(f.uploaded, request.Key)
	return &storage.UploadResponse{
		Key: request.Key,
		URL: "https://files.test/" + request.Key,
	}, nil
}

func (f *fakeStorage) Delete(ctx context.Context, key string) error { return nil }

func (f *fakeStorage) FileExists(ctx context.Context, key string) (bool, error) { return false, nil }
