package eventsv2

import "fmt"

// Таксономия ошибок отправки события. Каждый вызов либо полностью успешен
// (сервис ответил 202), либо завершается ровно одной из этих ошибок.
// Библиотека не выполняет внутренних retry и не подавляет ошибки.

// SerializationError — конверт не удалось закодировать в JSON. Возникает
// только если custom_details вызывающего кода несериализуемы; обнаруживается
// до какого-либо сетевого вызова.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("eventsv2: serialize envelope: %v", e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

// TransportError — сбой до получения ответа: резолвинг имени, отказ
// соединения, TLS, некорректный запрос. Первопричина доступна через Unwrap.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("eventsv2: transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// HTTPError — сервис ответил статусом 4xx или 5xx.
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("eventsv2: http error: status %d", e.StatusCode)
}

// NotAcceptedError — сервис ответил статусом, не являющимся ни 202, ни
// классической ошибкой (1xx, 2xx кроме 202, 3xx). Сервис документирует 202
// как единственный код успеха, поэтому такой ответ скорее говорит о
// несовпадении протокола, чем о проблеме в запросе, и выделяется отдельно.
type NotAcceptedError struct {
	StatusCode int
}

func (e *NotAcceptedError) Error() string {
	return fmt.Sprintf("eventsv2: not accepted: status %d", e.StatusCode)
}
