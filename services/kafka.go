package services

import (
	"encoding/json"
	"log"
	"taberu_api_ms/config"
	"taberu_api_ms/dtos/request"

	"github.com/IBM/sarama"
)

func SendSuspiciousLoginEventToKafka(event *request.SuspiciousLoginEvent) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return err
	}
	producer, err := sarama.NewSyncProducer(config.Conf.Application.Kafka.Brokers, nil)
	if err != nil {
		log.Println("Failed to create sync producer:", err)
		return err
	}
	defer producer.Close()

	msg := &sarama.ProducerMessage{
		Topic: config.Conf.Application.Kafka.SuspiciousLoginTopic,
		Value: sarama.StringEncoder(eventData),
	}
	partition, offset, err := producer.SendMessage(msg)
	if err != nil {
		log.Println("Failed to send suspicious login event:", err)
		return err
	}
	log.Printf("Successfully sent suspicious login event to partition %d at offset %d\n", partition, offset)
	return nil
}
