package eventsv2

// Severity указывает степень влияния события на затронутую систему.
// Сериализуется в виде строки в нижнем регистре — это контракт wire-формата.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
)

// Action определяет переход жизненного цикла алерта на стороне сервиса.
// Сериализуется в виде строки в нижнем регистре.
type Action string

const (
	// ActionTrigger открывает новый алерт или добавляет trigger-запись к
	// существующему алерту с тем же dedup_key.
	ActionTrigger Action = "trigger"

	// ActionAcknowledge переводит инцидент с указанным dedup_key в состояние
	// acknowledged: пока кто-то работает над проблемой, новые уведомления
	// не рассылаются.
	ActionAcknowledge Action = "acknowledge"

	// ActionResolve переводит инцидент с указанным dedup_key в состояние
	// resolved. Новый trigger с тем же dedup_key создаст уже новый инцидент.
	ActionResolve Action = "resolve"
)

// Link представляет ссылку, прикрепляемую к событию.
type Link struct {
	// URL ссылки.
	Href string `json:"href"`

	// Текст, описывающий назначение ссылки.
	Text string `json:"text,omitempty"`
}

// Image представляет изображение, прикрепляемое к инциденту.
type Image struct {
	// URL изображения. Сервис принимает только изображения, доступные по HTTPS.
	Src string `json:"src"`

	// Опциональный URL; делает изображение кликабельной ссылкой.
	Href string `json:"href,omitempty"`

	// Альтернативный текст изображения.
	Alt string `json:"alt,omitempty"`
}

// ChangePayload содержит данные change-события.
type ChangePayload struct {
	// Краткое текстовое описание события. Сервис документирует максимум
	// 1024 символа; библиотека лимит не проверяет (см. DESIGN.md).
	Summary string `json:"summary"`

	// Время, в которое инструмент-отправитель обнаружил или создал событие.
	Timestamp Timestamp `json:"timestamp"`

	// Уникальное имя места, где произошло изменение.
	Source string `json:"source,omitempty"`

	// Произвольные дополнительные данные события. Любое значение,
	// сериализуемое в JSON; библиотека его не интерпретирует.
	CustomDetails any `json:"custom_details,omitempty"`
}

// Change — одноразовое change-tracking событие. Не имеет жизненного цикла:
// отправляется один раз и не порождает инцидент.
type Change struct {
	Payload ChangePayload `json:"payload"`

	// Список прикрепляемых ссылок.
	Links []Link `json:"links,omitempty"`
}

// AlertTriggerPayload содержит данные alert-события.
type AlertTriggerPayload struct {
	// Степень влияния на затронутую систему.
	Severity Severity `json:"severity"`

	// Краткое описание события; из него формируются заголовки алертов.
	// Сервис документирует максимум 1024 символа; лимит не проверяется.
	Summary string `json:"summary"`

	// Уникальное расположение затронутой системы, желательно hostname или FQDN.
	Source string `json:"source"`

	// Время, в которое инструмент-отправитель обнаружил или создал событие.
	Timestamp *Timestamp `json:"timestamp,omitempty"`

	// Компонент системы, ответственный за событие, например mysql или eth0.
	Component string `json:"component,omitempty"`

	// Логическая группа компонентов сервиса, например app-stack.
	Group string `json:"group,omitempty"`

	// Класс/тип события, например ping failure или cpu load.
	Class string `json:"class,omitempty"`

	// Произвольные дополнительные данные о событии и затронутой системе.
	CustomDetails any `json:"custom_details,omitempty"`
}

// AlertTrigger открывает инцидент или повторно триггерит существующий,
// идентифицируемый по dedup_key.
type AlertTrigger struct {
	Payload AlertTriggerPayload `json:"payload"`

	// Ключ дедупликации, связывающий trigger с последующими
	// acknowledge/resolve. Сервис документирует максимум 255 символов;
	// лимит не проверяется.
	DedupKey string `json:"dedup_key,omitempty"`

	// Список прикрепляемых изображений.
	Images []Image `json:"images,omitempty"`

	// Список прикрепляемых ссылок.
	Links []Link `json:"links,omitempty"`

	// Имя клиента, создающего событие.
	Client string `json:"client,omitempty"`

	// URL домашней страницы клиента.
	ClientURL string `json:"client_url,omitempty"`
}

// AlertAcknowledge переводит ранее затриггеренный инцидент в состояние
// acknowledged. Кроме dedup_key ничего не несёт.
type AlertAcknowledge struct {
	DedupKey string `json:"dedup_key"`
}

// AlertResolve переводит ранее затриггеренный инцидент в состояние resolved.
// Кроме dedup_key ничего не несёт.
type AlertResolve struct {
	DedupKey string `json:"dedup_key"`
}

// Event — закрытое множество событий, принимаемых Client.Event и
// Client.EventContext: Change, AlertTrigger, AlertAcknowledge, AlertResolve.
type Event interface {
	isEvent()
}

func (Change) isEvent()           {}
func (AlertTrigger) isEvent()     {}
func (AlertAcknowledge) isEvent() {}
func (AlertResolve) isEvent()     {}
