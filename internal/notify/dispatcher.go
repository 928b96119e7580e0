package notify

import "log"

type Message struct {
	Recipient string
	Subject   string
	Body      string
}

// Dispatcher entrega em background: quem reserva não espera e-mail.
type Dispatcher struct {
	sender Sender
	queue  chan Message
}

func NewDispatcher(sender Sender) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		queue:  make(chan Message, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for msg := range d.queue {
		if err := d.sender.Send(msg.Recipient, msg.Subject, msg.Body); err != nil {
			// engolido de propósito: notificação nunca desfaz uma reserva
			log.Printf("notify error (%s): %v", msg.Recipient, err)
		}
	}
}

func (d *Dispatcher) Dispatch(msg Message) {
	if d == nil || msg.Recipient == "" {
		return
	}

	select {
	case d.queue <- msg:
		// enviado
	default:
		log.Println("notify queue full, dropping message")
	}
}
