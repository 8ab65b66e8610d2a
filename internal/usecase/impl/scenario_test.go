package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"romaneio/internal/domain/entity"
	"romaneio/internal/domain/repository"
	mockSvc "romaneio/internal/mocks/service"
	"romaneio/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is a shared in-memory backing store for the fake repositories, so
// the registration and reconciliation flows can be exercised end to end
// without wiring mock expectations for every intermediate call.
type memStore struct {
	clients    map[uuid.UUID]*entity.Client
	addresses  map[uuid.UUID]*entity.Address
	deliveries map[uuid.UUID]*entity.Delivery
}

func newMemStore() *memStore {
	return &memStore{
		clients:    make(map[uuid.UUID]*entity.Client),
		addresses:  make(map[uuid.UUID]*entity.Address),
		deliveries: make(map[uuid.UUID]*entity.Delivery),
	}
}

type memClientRepo struct{ store *memStore }

func (r *memClientRepo) Create(_ context.Context, client *entity.Client) error {
	copied := *client
	r.store.clients[client.ID] = &copied

	return nil
}

func (r *memClientRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Client, error) {
	client, ok := r.store.clients[id]
	if !ok {
		return nil, repository.ErrClientNotFound
	}
	copied := *client

	return &copied, nil
}

func (r *memClientRepo) Search(_ context.Context, _ string, _ int) ([]*entity.Client, error) {
	clients := make([]*entity.Client, 0, len(r.store.clients))
	for _, client := range r.store.clients {
		copied := *client
		clients = append(clients, &copied)
	}

	return clients, nil
}

func (r *memClientRepo) Update(_ context.Context, client *entity.Client) error {
	if _, ok := r.store.clients[client.ID]; !ok {
		return repository.ErrClientNotFound
	}
	copied := *client
	r.store.clients[client.ID] = &copied

	return nil
}

func (r *memClientRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store.clients[id]; !ok {
		return repository.ErrClientNotFound
	}
	delete(r.store.clients, id)

	return nil
}

type memAddressRepo struct{ store *memStore }

func (r *memAddressRepo) Create(_ context.Context, address *entity.Address) error {
	copied := *address
	r.store.addresses[address.ID] = &copied

	return nil
}

func (r *memAddressRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Address, error) {
	address, ok := r.store.addresses[id]
	if !ok {
		return nil, repository.ErrAddressNotFound
	}
	copied := *address

	return &copied, nil
}

func (r *memAddressRepo) FindByClient(_ context.Context, clientID uuid.UUID) ([]*entity.Address, error) {
	addresses := make([]*entity.Address, 0)
	for _, address := range r.store.addresses {
		if address.ClientID == clientID {
			copied := *address
			addresses = append(addresses, &copied)
		}
	}

	return addresses, nil
}

func (r *memAddressRepo) Update(_ context.Context, address *entity.Address) error {
	if _, ok := r.store.addresses[address.ID]; !ok {
		return repository.ErrAddressNotFound
	}
	copied := *address
	r.store.addresses[address.ID] = &copied

	return nil
}

func (r *memAddressRepo) ClearPrimary(_ context.Context, clientID uuid.UUID) error {
	for _, address := range r.store.addresses {
		if address.ClientID == clientID {
			address.IsPrimary = false
		}
	}

	return nil
}

func (r *memAddressRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store.addresses[id]; !ok {
		return repository.ErrAddressNotFound
	}
	delete(r.store.addresses, id)

	return nil
}

type memDeliveryRepo struct{ store *memStore }

func (r *memDeliveryRepo) Create(_ context.Context, delivery *entity.Delivery) error {
	copied := *delivery
	r.store.deliveries[delivery.ID] = &copied

	return nil
}

func (r *memDeliveryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Delivery, error) {
	delivery, ok := r.store.deliveries[id]
	if !ok {
		return nil, repository.ErrDeliveryNotFound
	}
	copied := *delivery

	return &copied, nil
}

func (r *memDeliveryRepo) List(_ context.Context, filter repository.DeliveryFilter) ([]*entity.Delivery, error) {
	deliveries := make([]*entity.Delivery, 0)
	for _, delivery := range r.store.deliveries {
		if filter.Date != nil {
			y1, m1, d1 := filter.Date.Date()
			y2, m2, d2 := delivery.ScheduledDate.Date()
			if y1 != y2 || m1 != m2 || d1 != d2 {
				continue
			}
		}
		if filter.Period != nil && delivery.Period != *filter.Period {
			continue
		}
		if filter.CourierID != nil && (delivery.CourierID == nil || *delivery.CourierID != *filter.CourierID) {
			continue
		}
		copied := *delivery
		deliveries = append(deliveries, &copied)
	}

	return deliveries, nil
}

func (r *memDeliveryRepo) FindUnreceived(_ context.Context) ([]*entity.Delivery, error) {
	deliveries := make([]*entity.Delivery, 0)
	for _, delivery := range r.store.deliveries {
		if !delivery.PaymentReceived {
			copied := *delivery
			deliveries = append(deliveries, &copied)
		}
	}

	return deliveries, nil
}

func (r *memDeliveryRepo) Update(_ context.Context, delivery *entity.Delivery) error {
	if _, ok := r.store.deliveries[delivery.ID]; !ok {
		return repository.ErrDeliveryNotFound
	}
	copied := *delivery
	r.store.deliveries[delivery.ID] = &copied

	return nil
}

func (r *memDeliveryRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.DeliveryStatus) error {
	delivery, ok := r.store.deliveries[id]
	if !ok {
		return repository.ErrDeliveryNotFound
	}
	delivery.Status = status

	return nil
}

func (r *memDeliveryRepo) MarkPaymentReceived(_ context.Context, id uuid.UUID) error {
	delivery, ok := r.store.deliveries[id]
	if !ok {
		return repository.ErrDeliveryNotFound
	}
	delivery.PaymentReceived = true

	return nil
}

func (r *memDeliveryRepo) UpdateSortIndexes(_ context.Context, updates []repository.SortIndexUpdate) error {
	for _, update := range updates {
		delivery, ok := r.store.deliveries[update.DeliveryID]
		if !ok {
			return repository.ErrDeliveryNotFound
		}
		delivery.SortIndex = update.SortIndex
	}

	return nil
}

func (r *memDeliveryRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store.deliveries[id]; !ok {
		return repository.ErrDeliveryNotFound
	}
	delete(r.store.deliveries, id)

	return nil
}

type memFactory struct {
	clientRepo   *memClientRepo
	addressRepo  *memAddressRepo
	deliveryRepo *memDeliveryRepo
}

func (f *memFactory) ClientRepo() repository.ClientRepository     { return f.clientRepo }
func (f *memFactory) AddressRepo() repository.AddressRepository   { return f.addressRepo }
func (f *memFactory) DeliveryRepo() repository.DeliveryRepository { return f.deliveryRepo }
func (f *memFactory) CourierPaymentRepo() repository.CourierPaymentRepository {
	return nil
}

type memTxManager struct{ factory *memFactory }

func (m *memTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

// TestScenario_CashDeliveryLifecycle runs the cash-payment lifecycle through
// the real services backed by the in-memory store: a client registered with
// a primary address, a "Dinheiro" delivery staying outstanding through a
// reconciliation pass, and the flag flipping only after the payment method
// records the money as received.
func TestScenario_CashDeliveryLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	factory := &memFactory{
		clientRepo:   &memClientRepo{store: store},
		addressRepo:  &memAddressRepo{store: store},
		deliveryRepo: &memDeliveryRepo{store: store},
	}
	txManager := &memTxManager{factory: factory}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	clientSvc := NewClientService(txManager, factory.clientRepo, logger)
	deliverySvc := NewDeliveryService(
		txManager,
		factory.deliveryRepo,
		factory.clientRepo,
		factory.addressRepo,
		mockSvc.NewMockGeocodingService(t),
		mockSvc.NewMockQRCodeService(t),
		mockSvc.NewMockAttachmentStorage(t),
		logger,
	)

	client, err := clientSvc.RegisterClient(ctx, &usecase.RegisterClientInput{
		Name:  "Dona Cida",
		Phone: "34 99999-0001",
		Address: &usecase.AddressInput{
			Street:       "Rua das Acácias",
			Number:       "120",
			Neighborhood: "Centro",
			City:         "Uberlândia",
			Region:       "Centro",
		},
	})
	require.NoError(t, err)
	require.Len(t, client.Addresses, 1)
	assert.True(t, client.Addresses[0].IsPrimary)

	addressID := client.Addresses[0].ID
	day := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)

	delivery, err := deliverySvc.CreateDelivery(ctx, &usecase.CreateDeliveryInput{
		RequisitionNumber: "REQ-7781",
		ClientID:          client.ID,
		AddressID:         &addressID,
		ScheduledDate:     day,
		Period:            entity.PeriodMorning.String(),
		PaymentMethod:     "Dinheiro",
		Value:             89.90,
	})
	require.NoError(t, err)
	assert.False(t, delivery.PaymentReceived)
	assert.Contains(t, delivery.Destination, "Rua das Acácias")

	// Cash stays outstanding through a reconciliation pass.
	result, err := deliverySvc.ReconcilePayments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Corrected)

	stored, err := deliverySvc.GetDelivery(ctx, delivery.ID)
	require.NoError(t, err)
	assert.False(t, stored.PaymentReceived)

	// The attendant records the money as collected.
	method := "Pago no Dinheiro"
	err = deliverySvc.UpdateDelivery(ctx, delivery.ID, &usecase.UpdateDeliveryInput{
		PaymentMethod: &method,
	})
	require.NoError(t, err)

	result, err = deliverySvc.ReconcilePayments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Corrected)

	stored, err = deliverySvc.GetDelivery(ctx, delivery.ID)
	require.NoError(t, err)
	assert.True(t, stored.PaymentReceived)
}
