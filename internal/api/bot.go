package telegram

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	app "gradation-bot/internal/application"
	"gradation-bot/internal/container"
	"gradation-bot/internal/domain/entity"
)

const (
	msgStart = `👋 Привет! Я считаю гранулометрический состав пробы.

📸 По снимку: пришлите фото частиц на контрастном фоне рядом с эталоном известной длины, затем откалибруйте масштаб.
🧪 По ситовому анализу: пришлите таблицу сит.

📋 Команды:
/photo — анализ по снимку
/calibrate <мм> [x1 y1 x2 y2] — калибровка по эталону
/analyze — рассчитать кривую по снимку
/sieve — анализ по таблице сит
/export — выгрузить последний результат в Excel
/help — справка
/cancel — отменить текущую операцию`

	msgHelp = `ℹ️ Как пользоваться ботом:

Снимок:
1️⃣ Отправьте фото пробы (можно файлом)
2️⃣ /calibrate 50 — длина эталона в мм
3️⃣ Пришлите координаты концов эталона на снимке: x1 y1 x2 y2
4️⃣ /analyze — кривая, D10…D60, Cu, Cc и гистограмма

Сита:
1️⃣ /sieve
2️⃣ Пришлите таблицу текстом, CSV или XLSX. Строка: сито, размер ячейки (мкм), остаток.
Пример:
#4 4750 50
#10 2000 30
#20 850 20

💡 Рекомендации:
• Снимайте сверху при ровном освещении
• Частицы не должны касаться друг друга
• Фон однотонный и светлее частиц

/export — выгрузить результат в Excel`

	msgAwaitingPhoto       = "📸 Отправьте фото пробы."
	msgPhotoAccepted       = "✅ Снимок получен. Теперь откалибруйте масштаб: /calibrate <длина эталона, мм>"
	msgAwaitingLine        = "📏 Пришлите координаты концов эталона на снимке в пикселях: x1 y1 x2 y2"
	msgAwaitingCalibration = "📏 Откалибруйте снимок: /calibrate <длина эталона, мм>"
	msgAwaitingSieve       = "🧪 Пришлите таблицу сит текстом, CSV или XLSX.\nСтрока: сито, размер ячейки (мкм), остаток."
	msgCancelled           = "❌ Операция отменена. /help — справка."
	msgSendPhoto           = "📸 Отправьте фото пробы или /sieve для ситового анализа."
	msgUnknownCommand      = "❓ Неизвестная команда. Используйте /help для справки."
	msgProcessing          = "⏳ Считаю..."
	msgProcessingError     = "⚠️ Не удалось обработать данные. Попробуйте ещё раз."
	msgNoImage             = "📸 Сначала отправьте фото пробы."
	msgNotCalibrated       = "📏 Снимок не откалиброван: /calibrate <длина эталона, мм>"
	msgNoResult            = "📭 Пока нечего выгружать: сначала выполните расчёт."
	msgBadCalibration      = "⚠️ Длина эталона и линии должны быть больше нуля. Попробуйте /calibrate ещё раз."
	msgBadCoordinates      = "⚠️ Нужно четыре числа: x1 y1 x2 y2"
	msgEmptySieve          = "⚠️ В таблице нет строк с остатком. Проверьте данные и пришлите снова."
	msgBadSieveRow         = "⚠️ Размер ячейки должен быть больше нуля, остаток не может быть отрицательным."
	msgUnsupportedFile     = "⚠️ Поддерживаются таблицы CSV и XLSX."
)

// Bot представляет Telegram-бота
type Bot struct {
	api *tgbotapi.BotAPI
	app *container.Container
}

// NewBot создаёт нового бота
func NewBot(token string, services *container.Container) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	return &Bot{
		api: api,
		app: services,
	}, nil
}

// Run запускает основной цикл обработки сообщений
func (b *Bot) Run() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	ctx := context.Background()

	for update := range updates {
		if update.Message == nil || update.Message.From == nil {
			continue
		}

		b.handleMessage(ctx, update.Message)
	}

	return nil
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	user, err := b.app.UserService.Get(ctx, msg.From.ID, msg.Chat.ID)
	if err != nil {
		log.Printf("Error getting user: %v", err)
		return
	}

	// Обработка команд
	if msg.IsCommand() {
		b.handleCommand(ctx, msg, user)
		return
	}

	// Обработка фото
	if len(msg.Photo) > 0 {
		photo := msg.Photo[len(msg.Photo)-1]
		b.handleImage(ctx, msg, photo.FileID)
		return
	}

	if msg.Document != nil {
		if strings.HasPrefix(msg.Document.MimeType, "image/") {
			b.handleImage(ctx, msg, msg.Document.FileID)
			return
		}
		b.handleSieveFile(ctx, msg)
		return
	}

	b.handleText(ctx, msg, user)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	chatID := msg.Chat.ID

	switch msg.Command() {
	case "start":
		if _, err := b.app.UserService.Cancel(ctx, user.ID, chatID); err != nil {
			log.Printf("Error resetting user %d: %v", user.ID, err)
		}
		b.sendMessage(chatID, msgStart)

	case "help":
		b.sendMessage(chatID, msgHelp)

	case "photo":
		if _, err := b.app.UserService.BeginImage(ctx, user.ID, chatID); err != nil {
			log.Printf("Error setting state: %v", err)
		}
		b.sendMessage(chatID, msgAwaitingPhoto)

	case "calibrate":
		b.handleCalibrate(ctx, msg, user)

	case "analyze":
		b.sendMessage(chatID, msgProcessing)
		out, err := b.app.ImageService.Analyze(ctx, user.ID, chatID)
		if err != nil {
			log.Printf("Error analyzing image for user %d: %v", user.ID, err)
			b.sendMessage(chatID, errorMessage(err))
			return
		}
		b.sendOutput(chatID, out)

	case "sieve":
		if _, err := b.app.UserService.BeginSieve(ctx, user.ID, chatID); err != nil {
			log.Printf("Error setting state: %v", err)
		}
		b.sendMessage(chatID, msgAwaitingSieve)

	case "export":
		data, name, err := b.app.ReportService.ExportLast(ctx, user.ID, chatID)
		if err != nil {
			log.Printf("Error exporting result for user %d: %v", user.ID, err)
			b.sendMessage(chatID, errorMessage(err))
			return
		}
		b.sendDocument(chatID, name, data)

	case "cancel":
		if _, err := b.app.UserService.Cancel(ctx, user.ID, chatID); err != nil {
			log.Printf("Error cancelling for user %d: %v", user.ID, err)
		}
		b.sendMessage(chatID, msgCancelled)

	default:
		b.sendMessage(chatID, msgUnknownCommand)
	}
}

// handleCalibrate начинает калибровку или выполняет её сразу, если
// координаты линии переданы вместе с командой.
func (b *Bot) handleCalibrate(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	chatID := msg.Chat.ID

	scale, done, err := calibrate(ctx, b.app.ImageService, user.ID, chatID, msg.CommandArguments())
	switch {
	case err != nil:
		b.sendMessage(chatID, errorMessage(err))
	case done:
		b.sendScale(chatID, scale)
	default:
		b.sendMessage(chatID, msgAwaitingLine)
	}
}

// handleText обрабатывает текст в зависимости от шага диалога
func (b *Bot) handleText(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	chatID := msg.Chat.ID

	switch user.State {
	case entity.StateAwaitingCalibrationLine:
		p1, p2, err := parsePoints(msg.Text)
		if err != nil {
			b.sendMessage(chatID, msgBadCoordinates)
			return
		}
		scale, err := b.app.ImageService.FinishCalibration(ctx, user.ID, chatID, p1, p2)
		if err != nil {
			b.sendMessage(chatID, errorMessage(err))
			return
		}
		b.sendScale(chatID, scale)

	case entity.StateAwaitingSieveTable:
		out, err := b.app.SieveService.SubmitText(ctx, user.ID, chatID, msg.Text)
		if err != nil {
			log.Printf("Error processing sieve table for user %d: %v", user.ID, err)
			b.sendMessage(chatID, errorMessage(err))
			return
		}
		b.sendOutput(chatID, out)

	case entity.StateAwaitingCalibration:
		b.sendMessage(chatID, msgAwaitingCalibration)

	case entity.StateProcessing:
		b.sendMessage(chatID, msgProcessing)

	default:
		b.sendMessage(chatID, msgSendPhoto)
	}
}

// handleImage скачивает снимок и кладёт его в сессию
func (b *Bot) handleImage(ctx context.Context, msg *tgbotapi.Message, fileID string) {
	imageData, err := b.downloadFile(fileID)
	if err != nil {
		log.Printf("Error downloading photo: %v", err)
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		return
	}

	log.Printf("Received image: %d bytes", len(imageData))

	if _, err := b.app.ImageService.AcceptPhoto(ctx, msg.From.ID, msg.Chat.ID, imageData); err != nil {
		log.Printf("Error accepting photo: %v", err)
		b.sendMessage(msg.Chat.ID, errorMessage(err))
		return
	}
	b.sendMessage(msg.Chat.ID, msgPhotoAccepted)
}

// handleSieveFile принимает таблицу сит файлом
func (b *Bot) handleSieveFile(ctx context.Context, msg *tgbotapi.Message) {
	data, err := b.downloadFile(msg.Document.FileID)
	if err != nil {
		log.Printf("Error downloading document: %v", err)
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		return
	}

	out, err := b.app.SieveService.Submit(ctx, msg.From.ID, msg.Chat.ID, msg.Document.FileName, data)
	if err != nil {
		log.Printf("Error processing sieve file %q: %v", msg.Document.FileName, err)
		b.sendMessage(msg.Chat.ID, errorMessage(err))
		return
	}
	b.sendOutput(msg.Chat.ID, out)
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	fileURL := file.Link(b.api.Token)

	resp, err := http.Get(fileURL)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

func (b *Bot) sendScale(chatID int64, scale entity.ScaleFactor) {
	b.sendMessage(chatID, fmt.Sprintf("✅ Масштаб: %s пикс/мм. Теперь /analyze", formatValue(float64(scale))))
}

// sendOutput отправляет текст результата и картинки, какие есть
func (b *Bot) sendOutput(chatID int64, out *app.AnalysisOutput) {
	b.sendMessage(chatID, formatResult(out.Result))
	b.sendPhoto(chatID, "curve.png", "Кривая гранулометрического состава", out.CurveChart)
	b.sendPhoto(chatID, "histogram.png", "Гистограмма размеров частиц", out.HistogramChart)
	b.sendPhoto(chatID, "particles.jpg", "Найденные частицы", out.Highlighted)
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}

func (b *Bot) sendPhoto(chatID int64, name, caption string, data []byte) {
	if len(data) == 0 {
		return
	}
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: name, Bytes: data})
	photo.Caption = caption
	if _, err := b.api.Send(photo); err != nil {
		log.Printf("Error sending photo: %v", err)
	}
}

func (b *Bot) sendDocument(chatID int64, name string, data []byte) {
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: name, Bytes: data})
	if _, err := b.api.Send(doc); err != nil {
		log.Printf("Error sending document: %v", err)
	}
}
