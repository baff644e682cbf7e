package finance

import (
	"context"
	"errors"
	"fmt"
	"time"

	financeerrors "github.com/simeongugl4-design/workforce-hub-png/internal/finance/errors"
	"github.com/simeongugl4-design/workforce-hub-png/internal/role"
	"github.com/simeongugl4-design/workforce-hub-png/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	payperioderrors "github.com/simeongugl4-design/workforce-hub-png/internal/payperiod/errors"
)

const (
	dateLayout         = "2006-01-02"
	counterTransaction = "financial_transaction"
)

//go:generate mockgen -source=finance_service.go -destination=mock/finance_service_mock.go -package=mock
type Service interface {
	Record(ctx context.Context, actingUserID string, primary role.Role, req RecordTransactionRequest) (TransactionResponse, error)
	Get(ctx context.Context, primary role.Role, id string) (TransactionResponse, error)
	List(ctx context.Context, primary role.Role, q ListTransactionsQuery) ([]TransactionResponse, int64, error)
	Summary(ctx context.Context, primary role.Role, q SummaryQuery) (SummaryResponse, error)
}

type service struct {
	repo     Repository
	counters counter.Repository
	logger   *zap.Logger
}

func NewService(repo Repository, counters counter.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("finance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("finance.service")
	}
	return &service{repo: repo, counters: counters, logger: l}
}

func (s *service) Record(ctx context.Context, actingUserID string, primary role.Role, req RecordTransactionRequest) (TransactionResponse, error) {
	if !role.FinancialScopeFor(primary).CanWrite {
		return TransactionResponse{}, financeerrors.ErrForbiddenFinanceAccess
	}

	if !validType(req.TransactionType) {
		return TransactionResponse{}, financeerrors.ErrInvalidTransactionType
	}

	if req.Amount.IsNegative() {
		return TransactionResponse{}, payperioderrors.ErrInvalidAmount
	}

	txDate, err := time.Parse(dateLayout, req.TransactionDate)
	if err != nil {
		return TransactionResponse{}, financeerrors.ErrInvalidTransactionDate
	}

	recordedBy, err := uuid.Parse(actingUserID)
	if err != nil {
		return TransactionResponse{}, financeerrors.ErrForbiddenFinanceAccess
	}

	var relatedWorker *uuid.UUID
	if req.RelatedWorkerID != nil {
		id, err := uuid.Parse(*req.RelatedWorkerID)
		if err != nil {
			return TransactionResponse{}, financeerrors.ErrTransactionNotFound
		}
		relatedWorker = &id
	}

	ref, err := s.NextReference(ctx)
	if err != nil {
		return TransactionResponse{}, err
	}

	t := &FinancialTransaction{
		ID:              uuid.New(),
		TransactionType: req.TransactionType,
		Amount:          req.Amount,
		Description:     req.Description,
		ReferenceNumber: ref,
		RecordedBy:      recordedBy,
		RelatedWorkerID: relatedWorker,
		TransactionDate: txDate,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return TransactionResponse{}, err
	}

	s.logger.Info("financial transaction recorded",
		zap.String("transaction_id", t.ID.String()),
		zap.String("transaction_type", t.TransactionType),
		zap.String("reference_number", t.ReferenceNumber),
	)

	return toResponse(t), nil
}

func (s *service) Get(ctx context.Context, primary role.Role, id string) (TransactionResponse, error) {
	if !role.FinancialScopeFor(primary).CanRead {
		return TransactionResponse{}, financeerrors.ErrForbiddenFinanceAccess
	}

	txID, err := uuid.Parse(id)
	if err != nil {
		return TransactionResponse{}, financeerrors.ErrTransactionNotFound
	}

	t, err := s.repo.GetByID(ctx, txID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TransactionResponse{}, financeerrors.ErrTransactionNotFound
		}
		return TransactionResponse{}, err
	}

	return toResponse(t), nil
}

func (s *service) List(ctx context.Context, primary role.Role, q ListTransactionsQuery) ([]TransactionResponse, int64, error) {
	if !role.FinancialScopeFor(primary).CanRead {
		return nil, 0, financeerrors.ErrForbiddenFinanceAccess
	}

	rows, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, 0, err
	}

	out := make([]TransactionResponse, len(rows))
	for i := range rows {
		out[i] = toResponse(&rows[i])
	}
	return out, total, nil
}

// Summary nets inflows against outflows per transaction type. Payroll,
// expense and reimbursement reduce the balance; bonus rows are still
// outflows, deduction rows are recoveries.
func (s *service) Summary(ctx context.Context, primary role.Role, q SummaryQuery) (SummaryResponse, error) {
	if !role.FinancialScopeFor(primary).CanRead {
		return SummaryResponse{}, financeerrors.ErrForbiddenFinanceAccess
	}

	buckets, err := s.repo.SummarizeByType(ctx, q.From, q.To)
	if err != nil {
		return SummaryResponse{}, err
	}

	net := decimal.Zero
	for _, b := range buckets {
		switch b.TransactionType {
		case TypeDeduction:
			net = net.Add(b.Total)
		default:
			net = net.Sub(b.Total)
		}
	}

	return SummaryResponse{
		From:     q.From,
		To:       q.To,
		ByType:   buckets,
		NetTotal: net,
	}, nil
}

func (s *service) NextReference(ctx context.Context) (string, error) {
	next, err := s.counters.GetNextValue(ctx, counterTransaction)
	if err != nil {
		return "", err
	}
	return FormatReference(next), nil
}

// FormatReference renders a sequential counter value as a TXN reference.
func FormatReference(n int64) string {
	return fmt.Sprintf("TXN-%06d", n)
}

// CounterTransaction is the counters row that backs TXN references.
const CounterTransaction = counterTransaction
