package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/motorentals/moto-rentals-api/config"
	"github.com/motorentals/moto-rentals-api/pkg/mailer"
)

// Consumes EmailJob messages from the notification queue and delivers them
// via Mailgun. Jobs with an explicit subject/text are sent as-is; otherwise
// subject and body are rendered from the job kind.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if cfg.RabbitMQURL == "" || cfg.RabbitMQEmailQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}
	if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" || cfg.MailgunSender == "" {
		log.Fatal("Mailgun not configured")
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(16, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}

	if _, err := ch.QueueDeclare(cfg.RabbitMQEmailQueue, true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare: %v", err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQEmailQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	mg := mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)
	ctx := context.Background()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		for msg := range msgs {
			var job mailer.EmailJob
			if err := json.Unmarshal(msg.Body, &job); err != nil {
				log.Printf("bad message: %v", err)
				_ = msg.Nack(false, false)
				continue
			}
			if job.To == "" {
				log.Printf("job without recipient, dropping")
				_ = msg.Nack(false, false)
				continue
			}

			subject, text := render(&job)

			c, cancel := context.WithTimeout(ctx, 15*time.Second)
			if err := mg.Send(c, job.To, subject, text); err != nil {
				cancel()
				log.Printf("send failed: %v", err)
				_ = msg.Nack(false, true)
				continue
			}
			cancel()
			_ = msg.Ack(false)
		}
		close(done)
	}()

	log.Printf("notification worker listening on queue=%s", cfg.RabbitMQEmailQueue)
	<-stop
	log.Printf("shutting down...")
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}

func render(job *mailer.EmailJob) (subject, text string) {
	subject, text = job.Subject, job.Text
	if subject != "" && text != "" {
		return subject, text
	}

	name := job.Name
	if name == "" {
		name = "there"
	}
	switch job.Kind {
	case mailer.KindWelcome:
		subject = "Welcome to Moto Rentals"
		text = fmt.Sprintf("Hi %s,\n\nYour account is ready. Browse the catalog and book your first ride.\n", name)
	case mailer.KindVerifyDecision:
		if job.Verified {
			subject = "Your account is verified"
			text = fmt.Sprintf("Hi %s,\n\nAn administrator verified your account. You can now rent motorcycles.\n", name)
		} else {
			subject = "Verification update"
			text = fmt.Sprintf("Hi %s,\n\nYour verification status changed. Please contact support for details.\n", name)
		}
	default:
		if subject == "" {
			subject = "Moto Rentals notification"
		}
		if text == "" {
			text = fmt.Sprintf("Hi %s,\n\nYou have a new notification from Moto Rentals.\n", name)
		}
	}
	return subject, text
}
