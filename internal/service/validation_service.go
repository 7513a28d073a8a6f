package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/wachira141/payment-gateway-sub003/internal/core/ports"
	"github.com/wachira141/payment-gateway-sub003/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// outlierFactor flags a fee ratio this many times above its group baseline.
var outlierFactor = decimal.NewFromInt(2)

// minGroupSize is the smallest gateway/method group with a usable baseline.
const minGroupSize = 3

// ValidationServiceImpl implements ports.ValidationService. The database
// constraints are the primary guarantee; this layer re-derives balance from
// the raw entries to catch anything that slipped past them.
type ValidationServiceImpl struct {
	ledgerRepo    ports.LedgerRepository
	reportingRepo ports.ReportingRepository
	log           zerolog.Logger
}

// NewValidationService creates a new ValidationServiceImpl.
func NewValidationService(ledgerRepo ports.LedgerRepository, reportingRepo ports.ReportingRepository, log zerolog.Logger) *ValidationServiceImpl {
	return &ValidationServiceImpl{
		ledgerRepo:    ledgerRepo,
		reportingRepo: reportingRepo,
		log:           log,
	}
}

// ValidateTransactionBalance re-sums every transaction in the window and
// reports any whose debit and credit totals disagree.
func (s *ValidationServiceImpl) ValidateTransactionBalance(ctx context.Context, merchantID uuid.UUID, start, end time.Time, currency *string) (*ports.BalanceAuditReport, error) {
	sums, err := s.ledgerRepo.SumsByTransaction(ctx, merchantID, start, end, currency)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("sum transactions: %w", err))
	}

	report := &ports.BalanceAuditReport{
		IsBalanced:          true,
		TransactionsChecked: len(sums),
		Discrepancies:       []ports.Discrepancy{},
	}
	for _, sum := range sums {
		if sum.DebitTotal.Equal(sum.CreditTotal) {
			continue
		}
		report.IsBalanced = false
		report.Discrepancies = append(report.Discrepancies, ports.Discrepancy{
			TransactionID: sum.TransactionID,
			Currency:      sum.Currency,
			DebitTotal:    sum.DebitTotal,
			CreditTotal:   sum.CreditTotal,
			Difference:    sum.DebitTotal.Sub(sum.CreditTotal),
		})
	}

	if !report.IsBalanced {
		s.log.Error().
			Str("merchant_id", merchantID.String()).
			Int("discrepancies", len(report.Discrepancies)).
			Msg("ledger audit found unbalanced transactions")
	}
	return report, nil
}

type feeGroupKey struct {
	gateway  string
	method   string
	currency string
}

type feeGroup struct {
	count       int
	totalAmount decimal.Decimal
	totalFees   decimal.Decimal
	ratioSum    decimal.Decimal
}

func groupObservations(obs []ports.FeeObservation) map[feeGroupKey]*feeGroup {
	groups := make(map[feeGroupKey]*feeGroup)
	for _, o := range obs {
		if !o.Amount.IsPositive() {
			continue
		}
		key := feeGroupKey{gateway: o.Gateway, method: o.Method, currency: o.Currency}
		g := groups[key]
		if g == nil {
			g = &feeGroup{totalAmount: decimal.Zero, totalFees: decimal.Zero, ratioSum: decimal.Zero}
			groups[key] = g
		}
		g.count++
		g.totalAmount = g.totalAmount.Add(o.Amount)
		g.totalFees = g.totalFees.Add(o.Fee)
		g.ratioSum = g.ratioSum.Add(o.Fee.Div(o.Amount))
	}
	return groups
}

// DetectAnomalies flags transactions above the amount threshold and
// transactions whose fee ratio is an outlier against the mean ratio of their
// gateway and method. Small groups have no trustworthy baseline and are
// skipped for the ratio check.
func (s *ValidationServiceImpl) DetectAnomalies(ctx context.Context, merchantID uuid.UUID, threshold decimal.Decimal, start, end time.Time) ([]ports.Anomaly, error) {
	obs, err := s.reportingRepo.FeeObservations(ctx, merchantID, start, end)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("fee observations: %w", err))
	}

	groups := groupObservations(obs)
	anomalies := []ports.Anomaly{}

	for _, o := range obs {
		if threshold.IsPositive() && o.Amount.GreaterThan(threshold) {
			anomalies = append(anomalies, ports.Anomaly{
				Kind:        "amount_threshold",
				RelatedKind: o.RelatedKind,
				RelatedID:   o.RelatedID,
				Gateway:     o.Gateway,
				Method:      o.Method,
				Currency:    o.Currency,
				Amount:      o.Amount,
				Observed:    o.Amount,
				Baseline:    threshold,
				OccurredAt:  o.OccurredAt,
			})
		}

		if !o.Amount.IsPositive() {
			continue
		}
		g := groups[feeGroupKey{gateway: o.Gateway, method: o.Method, currency: o.Currency}]
		if g == nil || g.count < minGroupSize {
			continue
		}
		baseline := g.ratioSum.Div(decimal.NewFromInt(int64(g.count)))
		if !baseline.IsPositive() {
			continue
		}
		ratio := o.Fee.Div(o.Amount)
		if ratio.GreaterThan(baseline.Mul(outlierFactor)) {
			anomalies = append(anomalies, ports.Anomaly{
				Kind:        "fee_ratio_outlier",
				RelatedKind: o.RelatedKind,
				RelatedID:   o.RelatedID,
				Gateway:     o.Gateway,
				Method:      o.Method,
				Currency:    o.Currency,
				Amount:      o.Amount,
				Observed:    ratio,
				Baseline:    baseline,
				OccurredAt:  o.OccurredAt,
			})
		}
	}

	if len(anomalies) > 0 {
		s.log.Warn().
			Str("merchant_id", merchantID.String()).
			Int("anomalies", len(anomalies)).
			Msg("anomaly scan flagged transactions")
	}
	return anomalies, nil
}

// GetGatewayFeeAnalysis aggregates fee totals and ratios by gateway, method
// and currency over the window.
func (s *ValidationServiceImpl) GetGatewayFeeAnalysis(ctx context.Context, merchantID uuid.UUID, start, end time.Time) ([]ports.GatewayFeeAggregate, error) {
	obs, err := s.reportingRepo.FeeObservations(ctx, merchantID, start, end)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("fee observations: %w", err))
	}

	groups := groupObservations(obs)
	out := make([]ports.GatewayFeeAggregate, 0, len(groups))
	for key, g := range groups {
		avgRatio := decimal.Zero
		if g.totalAmount.IsPositive() {
			avgRatio = g.totalFees.Div(g.totalAmount)
		}
		out = append(out, ports.GatewayFeeAggregate{
			Gateway:     key.gateway,
			Method:      key.method,
			Currency:    key.currency,
			Count:       g.count,
			TotalAmount: g.totalAmount,
			TotalFees:   g.totalFees,
			AvgFeeRatio: avgRatio,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Gateway != out[j].Gateway {
			return out[i].Gateway < out[j].Gateway
		}
		if out[i].Method != out[j].Method {
			return out[i].Method < out[j].Method
		}
		return out[i].Currency < out[j].Currency
	})
	return out, nil
}
