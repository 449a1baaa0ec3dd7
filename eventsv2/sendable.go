package eventsv2

// Отправляемые конверты — wire-зеркала публичных типов, дополненные
// routing_key и, для алертов, event_action. Наружу не экспортируются:
// конверт создаётся, сериализуется и выбрасывается внутри одного вызова.

type sendableChange struct {
	RoutingKey string        `json:"routing_key"`
	Payload    ChangePayload `json:"payload"`
	Links      []Link        `json:"links,omitempty"`
}

type sendableAlertTrigger struct {
	RoutingKey  string              `json:"routing_key"`
	Payload     AlertTriggerPayload `json:"payload"`
	DedupKey    string              `json:"dedup_key,omitempty"`
	Images      []Image             `json:"images,omitempty"`
	Links       []Link              `json:"links,omitempty"`
	EventAction Action              `json:"event_action"`
	Client      string              `json:"client,omitempty"`
	ClientURL   string              `json:"client_url,omitempty"`
}

type sendableAlertFollowup struct {
	RoutingKey  string `json:"routing_key"`
	DedupKey    string `json:"dedup_key"`
	EventAction Action `json:"event_action"`
}

// newSendableChange обогащает change-событие ключом интеграции клиента.
// Ключ всегда берётся из конфигурации клиента; переопределить его со стороны
// вызывающего кода невозможно.
func newSendableChange(c Change, routingKey string) sendableChange {
	return sendableChange{
		RoutingKey: routingKey,
		Payload:    c.Payload,
		Links:      c.Links,
	}
}

// newSendableAlertTrigger обогащает trigger-событие ключом интеграции и
// проставляет event_action: "trigger".
func newSendableAlertTrigger(a AlertTrigger, routingKey string) sendableAlertTrigger {
	return sendableAlertTrigger{
		RoutingKey:  routingKey,
		Payload:     a.Payload,
		DedupKey:    a.DedupKey,
		Images:      a.Images,
		Links:       a.Links,
		EventAction: ActionTrigger,
		Client:      a.Client,
		ClientURL:   a.ClientURL,
	}
}

// newSendableAlertFollowup строит конверт acknowledge/resolve: от исходного
// события остаётся только dedup_key, остальное отбрасывается.
func newSendableAlertFollowup(dedupKey string, action Action, routingKey string) sendableAlertFollowup {
	return sendableAlertFollowup{
		RoutingKey:  routingKey,
		DedupKey:    dedupKey,
		EventAction: action,
	}
}
