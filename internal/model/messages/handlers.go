package messages

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/gastos-client/internal/entity/expense"
	"max.ks1230/gastos-client/internal/logger"
	"max.ks1230/gastos-client/internal/model/remote"
	"max.ks1230/gastos-client/internal/model/state"
	"max.ks1230/gastos-client/internal/model/view"
)

const (
	dontUnderstandMessage = "Não entendi :("
	loveToTalkMessage     = "Use /start para ver o que eu sei fazer."
	helloMessage          = `Olá! Eu sou o bot do Controle de Gastos 💰

/gastos - painel com os gastos, atualizado sozinho
/total - total gasto
/resumo - resumo do mês atual
/categorias - categorias cadastradas
/pagamentos - tipos de pagamento
/status - conexão com o backend
/gasto <valor> <categoria> <tipo> [dd/mm/aaaa] <descrição>
/categoria <nome> [cor]
/pagamento <nome> [ícone] [cor]
/excluir <id>
/relatorio [mês ano] ou /relatorio <ano>`

	noCategoriesMessage    = "Nenhuma categoria cadastrada"
	noPaymentTypesMessage  = "Nenhum tipo de pagamento cadastrado"
	nothingPendingMessage  = "Não há nenhuma exclusão aguardando confirmação"
	deleteCancelledMessage = "Exclusão cancelada"

	incorrectUsageMessage  = "Uso incorreto do comando"
	expenseUsageMessage    = "Uso: /gasto <valor> <categoria> <tipo> [dd/mm/aaaa] <descrição>"
	incorrectAmountMessage = "Valor inválido"
	unknownCategoryMessage = "Categoria não encontrada: "
	unknownPaymentMessage  = "Tipo de pagamento não encontrado: "
	incorrectPeriodMessage = "Período inválido. Use /relatorio <mês> <ano> ou /relatorio <ano>"
	cannotGetReportMessage = "Não foi possível gerar o relatório agora. Tente mais tarde"
	confirmInstructions    = "\n/sim para confirmar, /nao para cancelar"
)

const (
	startCommand      = "/start"
	expensesCommand   = "/gastos"
	totalCommand      = "/total"
	summaryCommand    = "/resumo"
	categoriesCommand = "/categorias"
	paymentsCommand   = "/pagamentos"
	statusCommand     = "/status"
	expenseCommand    = "/gasto"
	categoryCommand   = "/categoria"
	paymentCommand    = "/pagamento"
	deleteCommand     = "/excluir"
	yesCommand        = "/sim"
	noCommand         = "/nao"
	reportCommand     = "/relatorio"
)

type syncer interface {
	Store() *state.Store
	Probe(ctx context.Context) bool
	CreateCategory(ctx context.Context, draft expense.CategoryDraft) (expense.Category, error)
	CreatePaymentType(ctx context.Context, draft expense.PaymentTypeDraft) (expense.PaymentType, error)
	CreateExpense(ctx context.Context, draft expense.Draft) (expense.Expense, error)
	DeleteExpense(ctx context.Context, id string, confirm remote.Confirmer) error
}

type reporter interface {
	MonthlyReport(ctx context.Context, year, month int) (expense.MonthlyReport, error)
	AnnualReport(ctx context.Context, year int) (expense.AnnualReport, error)
}

type config interface {
	Location() *time.Location
}

type dashboards interface {
	Open(userID int64) error
}

type handler func(ctx context.Context, arg string, userID int64) (string, error)

type handlerMap map[string]handler

type HandlerOption func(*HandlerService)

// WithDashboards makes /gastos open a live dashboard instead of a one-off list.
func WithDashboards(d dashboards) HandlerOption {
	return func(s *HandlerService) {
		s.dashboards = d
	}
}

type HandlerService struct {
	handlersMap handlerMap
	syncer      syncer
	reports     reporter
	location    *time.Location
	dashboards  dashboards
	now         func() time.Time

	mu      sync.Mutex
	pending map[int64]string
}

func newHandler(syncer syncer, reports reporter, config config, opts ...HandlerOption) *HandlerService {
	res := &HandlerService{
		syncer:   syncer,
		reports:  reports,
		location: config.Location(),
		now:      time.Now,
		pending:  make(map[int64]string),
	}
	for _, opt := range opts {
		opt(res)
	}
	res.handlersMap = newMap(res)
	return res
}

func (s *HandlerService) HandleMessage(ctx context.Context, text string, userID int64) (string, error) {
	cmd, arg := parseCommand(text)

	handler, ok := s.handlersMap[cmd]
	if ok {
		return handler(ctx, arg, userID)
	}
	return dontUnderstandMessage, nil
}

func newMap(s *HandlerService) handlerMap {
	m := make(handlerMap)
	m[startCommand] = s.handleStart
	m[expensesCommand] = s.handleExpenses
	m[totalCommand] = s.handleTotal
	m[summaryCommand] = s.handleSummary
	m[categoriesCommand] = s.handleCategories
	m[paymentsCommand] = s.handlePayments
	m[statusCommand] = s.handleStatus
	m[expenseCommand] = s.handleExpense
	m[categoryCommand] = s.handleCategory
	m[paymentCommand] = s.handlePayment
	m[deleteCommand] = s.handleDelete
	m[yesCommand] = s.handleAnswer(true)
	m[noCommand] = s.handleAnswer(false)
	m[reportCommand] = s.handleReport

	m[""] = s.handleNoCommand

	return m
}

func (s *HandlerService) render() view.View {
	return view.Render(s.syncer.Store().Snapshot(), view.Options{Now: s.now(), Location: s.location})
}

func (s *HandlerService) handleStart(_ context.Context, _ string, _ int64) (string, error) {
	return helloMessage, nil
}

func (s *HandlerService) handleExpenses(_ context.Context, _ string, userID int64) (string, error) {
	if s.dashboards == nil {
		return view.ChatText(s.render(), view.MaxChatRunes), nil
	}
	if err := s.dashboards.Open(userID); err != nil {
		return "", errors.Wrap(err, "open dashboard")
	}
	return "", nil
}

func (s *HandlerService) handleTotal(_ context.Context, _ string, _ int64) (string, error) {
	return "Total: " + s.render().Total, nil
}

func (s *HandlerService) handleSummary(_ context.Context, _ string, _ int64) (string, error) {
	return view.SummaryText(s.render().Summary), nil
}

func (s *HandlerService) handleCategories(_ context.Context, _ string, _ int64) (string, error) {
	choices := s.render().Categories
	if len(choices) == 0 {
		return noCategoriesMessage, nil
	}
	return view.Choices(choices), nil
}

func (s *HandlerService) handlePayments(_ context.Context, _ string, _ int64) (string, error) {
	choices := s.render().PaymentTypes
	if len(choices) == 0 {
		return noPaymentTypesMessage, nil
	}
	return view.Choices(choices), nil
}

func (s *HandlerService) handleStatus(ctx context.Context, _ string, _ int64) (string, error) {
	if s.syncer.Probe(ctx) {
		return view.ConnectedText, nil
	}
	return view.OfflineText, nil
}

// handleExpense answers through the sync notifications, so on success and on
// backend errors it returns an empty reply.
func (s *HandlerService) handleExpense(ctx context.Context, arg string, _ int64) (string, error) {
	args := strings.Fields(arg)
	if len(args) < 4 {
		return expenseUsageMessage, nil
	}
	amount, err := expense.ParseAmount(args[0])
	if err != nil {
		return incorrectAmountMessage, nil
	}

	snap := s.syncer.Store().Snapshot()
	category, ok := expense.FindCategory(snap.Categories, args[1])
	if !ok {
		return unknownCategoryMessage + args[1], nil
	}
	paymentType, ok := expense.FindPaymentType(snap.PaymentTypes, args[2])
	if !ok {
		return unknownPaymentMessage + args[2], nil
	}

	date, rest := expense.DateOf(s.now().In(s.location)), args[3:]
	if d, dErr := expense.ParseDisplayDate(rest[0]); dErr == nil && len(rest) > 1 {
		date, rest = d, rest[1:]
	}

	_, err = s.syncer.CreateExpense(ctx, expense.Draft{
		Description:   strings.Join(rest, " "),
		Amount:        amount,
		CategoryID:    category.ID,
		PaymentTypeID: paymentType.ID,
		Date:          date,
	})
	logWriteError("create expense", err)
	return "", nil
}

func (s *HandlerService) handleCategory(ctx context.Context, arg string, _ int64) (string, error) {
	args := strings.Fields(arg)
	if len(args) == 0 {
		return incorrectUsageMessage, nil
	}
	draft := expense.CategoryDraft{Name: args[0]}
	if len(args) > 1 {
		draft.Color = args[1]
	}
	_, err := s.syncer.CreateCategory(ctx, draft)
	logWriteError("create category", err)
	return "", nil
}

func (s *HandlerService) handlePayment(ctx context.Context, arg string, _ int64) (string, error) {
	args := strings.Fields(arg)
	if len(args) == 0 {
		return incorrectUsageMessage, nil
	}
	draft := expense.PaymentTypeDraft{Name: args[0]}
	if len(args) > 1 {
		draft.Icon = args[1]
	}
	if len(args) > 2 {
		draft.Color = args[2]
	}
	_, err := s.syncer.CreatePaymentType(ctx, draft)
	logWriteError("create payment type", err)
	return "", nil
}

// handleDelete only remembers the id; the request is sent on /sim.
func (s *HandlerService) handleDelete(_ context.Context, arg string, userID int64) (string, error) {
	id := strings.TrimPrefix(strings.TrimSpace(arg), "#")
	if id == "" || strings.ContainsAny(id, " \t") {
		return incorrectUsageMessage, nil
	}

	s.mu.Lock()
	s.pending[userID] = id
	s.mu.Unlock()

	return remote.DeletePrompt + confirmInstructions, nil
}

func (s *HandlerService) handleAnswer(answer bool) handler {
	return func(ctx context.Context, _ string, userID int64) (string, error) {
		s.mu.Lock()
		id, ok := s.pending[userID]
		delete(s.pending, userID)
		s.mu.Unlock()

		if !ok {
			return nothingPendingMessage, nil
		}

		confirm := remote.ConfirmFunc(func(context.Context, string) bool { return answer })
		err := s.syncer.DeleteExpense(ctx, id, confirm)
		if errors.Is(err, remote.ErrDeclined) {
			return deleteCancelledMessage, nil
		}
		logWriteError("delete expense", err)
		return "", nil
	}
}

func (s *HandlerService) handleReport(ctx context.Context, arg string, _ int64) (string, error) {
	args := strings.Fields(arg)
	today := s.now().In(s.location)

	switch len(args) {
	case 0:
		return s.monthlyReport(ctx, today.Year(), int(today.Month()))
	case 1:
		year, err := strconv.Atoi(args[0])
		if err != nil {
			return incorrectPeriodMessage, nil
		}
		return s.annualReport(ctx, year)
	case 2:
		month, mErr := strconv.Atoi(args[0])
		year, yErr := strconv.Atoi(args[1])
		if mErr != nil || yErr != nil || month < 1 || month > 12 {
			return incorrectPeriodMessage, nil
		}
		return s.monthlyReport(ctx, year, month)
	}
	return incorrectPeriodMessage, nil
}

func (s *HandlerService) monthlyReport(ctx context.Context, year, month int) (string, error) {
	report, err := s.reports.MonthlyReport(ctx, year, month)
	if err != nil {
		return cannotGetReportMessage, errors.Wrap(err, "handle report")
	}
	return view.MonthlyReportText(report), nil
}

func (s *HandlerService) annualReport(ctx context.Context, year int) (string, error) {
	report, err := s.reports.AnnualReport(ctx, year)
	if err != nil {
		return cannotGetReportMessage, errors.Wrap(err, "handle report")
	}
	return view.AnnualReportText(report), nil
}

func (s *HandlerService) handleNoCommand(_ context.Context, _ string, _ int64) (string, error) {
	return loveToTalkMessage, nil
}

func logWriteError(op string, err error) {
	if err != nil {
		logger.Info("write from chat failed", zap.String("op", op), zap.Error(err))
	}
}
