package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"casino_webapp/internal/domain"
	"casino_webapp/internal/logger"
	"casino_webapp/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// AdminBot обрабатывает запросы коинов через Telegram: админ видит
// новые запросы и одобряет или отклоняет их командами
type AdminBot struct {
	bot          *tgbotapi.BotAPI
	adminService *service.AdminService
	adminIDs     []int64 // Telegram ID пользователей с правами админа
	stopCh       chan struct{}
	wg           sync.WaitGroup
	log          *slog.Logger
}

// NewAdminBot создаёт нового админ бота
func NewAdminBot(token string, adminService *service.AdminService, adminIDs []int64) (*AdminBot, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log := logger.With("component", "admin_bot")
	log.Info("admin bot authorized", "username", bot.Self.UserName)

	return &AdminBot{
		bot:          bot,
		adminService: adminService,
		adminIDs:     adminIDs,
		stopCh:       make(chan struct{}),
		log:          log,
	}, nil
}

// Start запускает прослушивание команд
func (b *AdminBot) Start() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.bot.GetUpdatesChan(u)
	b.log.Info("starting bot update loop")

	for {
		select {
		case <-b.stopCh:
			b.log.Info("stopping bot update loop")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}

			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}
			if !b.isAdmin(update.Message.From.ID) {
				continue
			}

			b.wg.Add(1)
			go func(msg *tgbotapi.Message) {
				defer b.wg.Done()
				b.handleCommand(msg)
			}(update.Message)
		}
	}
}

// Stop плавно останавливает бота
func (b *AdminBot) Stop() {
	b.log.Info("stopping admin bot...")
	close(b.stopCh)
	b.bot.StopReceivingUpdates()

	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		b.log.Info("admin bot stopped gracefully")
	case <-time.After(10 * time.Second):
		b.log.Warn("admin bot shutdown timeout, some handlers may not have completed")
	}
}

// NotifyNewRequest рассылает всем админам уведомление о новом запросе
func (b *AdminBot) NotifyNewRequest(req *domain.CoinRequest) {
	text := fmt.Sprintf("Новый запрос коинов #%d\nИгрок: %s\nСообщение: %s\n\n/approve_%d или /deny_%d",
		req.ID, req.Username, req.Message, req.ID, req.ID)
	for _, adminID := range b.adminIDs {
		if _, err := b.bot.Send(tgbotapi.NewMessage(adminID, text)); err != nil {
			b.log.Warn("не удалось уведомить админа", "admin_id", adminID, "error", err)
		}
	}
}

func (b *AdminBot) isAdmin(userID int64) bool {
	for _, id := range b.adminIDs {
		if id == userID {
			return true
		}
	}
	return false
}

func (b *AdminBot) handleCommand(msg *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var response string
	command := msg.Command()

	// /approve_12 и /deny_12 приходят из уведомлений
	switch {
	case strings.HasPrefix(command, "approve_"):
		response = b.resolve(ctx, strings.TrimPrefix(command, "approve_"), msg.From.ID, true)
	case strings.HasPrefix(command, "deny_"):
		response = b.resolve(ctx, strings.TrimPrefix(command, "deny_"), msg.From.ID, false)
	default:
		switch command {
		case "start", "help":
			response = "Команды:\n" +
				"/pending - необработанные запросы коинов\n" +
				"/approve <id> - одобрить запрос\n" +
				"/deny <id> - отклонить запрос\n" +
				"/stats - статистика платформы"
		case "pending":
			response = b.pendingList(ctx)
		case "approve":
			response = b.resolve(ctx, strings.TrimSpace(msg.CommandArguments()), msg.From.ID, true)
		case "deny":
			response = b.resolve(ctx, strings.TrimSpace(msg.CommandArguments()), msg.From.ID, false)
		case "stats":
			response = b.statsText(ctx)
		default:
			response = "Неизвестная команда, /help"
		}
	}

	if _, err := b.bot.Send(tgbotapi.NewMessage(msg.Chat.ID, response)); err != nil {
		b.log.Warn("не удалось отправить ответ", "error", err)
	}
}

func (b *AdminBot) pendingList(ctx context.Context) string {
	reqs, err := b.adminService.GetPendingRequests(ctx, 20)
	if err != nil {
		return "Ошибка: " + err.Error()
	}
	if len(reqs) == 0 {
		return "Необработанных запросов нет"
	}

	var sb strings.Builder
	sb.WriteString("Запросы коинов:\n")
	for _, r := range reqs {
		fmt.Fprintf(&sb, "#%d %s: %s (/approve_%d /deny_%d)\n", r.ID, r.Username, r.Message, r.ID, r.ID)
	}
	return sb.String()
}

func (b *AdminBot) resolve(ctx context.Context, rawID string, adminTgID int64, approve bool) string {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return "Нужен числовой id запроса"
	}

	if approve {
		req, err := b.adminService.ApproveRequest(ctx, id, adminTgID)
		if err != nil {
			return "Ошибка: " + err.Error()
		}
		return fmt.Sprintf("Запрос #%d одобрен, начислено %d коинов", req.ID, domain.CoinRequestGrant)
	}

	req, err := b.adminService.DenyRequest(ctx, id, adminTgID)
	if err != nil {
		return "Ошибка: " + err.Error()
	}
	return fmt.Sprintf("Запрос #%d отклонен", req.ID)
}

func (b *AdminBot) statsText(ctx context.Context) string {
	stats, err := b.adminService.GetStats(ctx)
	if err != nil {
		return "Ошибка: " + err.Error()
	}
	return fmt.Sprintf(
		"Пользователей: %d (активных сегодня: %d)\n"+
			"Игр: %d (сегодня: %d)\n"+
			"Коинов в обращении: %d\n"+
			"Ставок всего: %d (сегодня: %d)\n"+
			"Прибыль казино: %d\n"+
			"Запросов в очереди: %d",
		stats.TotalUsers, stats.ActiveUsersToday,
		stats.TotalGamesPlayed, stats.GamesToday,
		stats.TotalCoins,
		stats.TotalWagered, stats.WageredToday,
		stats.HouseProfit,
		stats.PendingRequests,
	)
}
