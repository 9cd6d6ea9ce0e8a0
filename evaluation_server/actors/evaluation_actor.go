package actors

import (
	"log"

	"github.com/asynkron/protoactor-go/actor"

	"softmaxreg/evaluation_server/conversion"
	"softmaxreg/messages"
	"softmaxreg/softmax"
)

// EvaluationActor answers EvaluateLoss requests. It holds no state
// between requests, so a single instance can serve callers that issue
// evaluations concurrently.
type EvaluationActor struct{}

func NewEvaluationActor() actor.Actor {
	return &EvaluationActor{}
}

func (state *EvaluationActor) Receive(context actor.Context) {
	switch msg := context.Message().(type) {
	case *actor.Started:
		log.Println("Evaluation Actor started:", context.Self().String())

	case *messages.EvaluateLoss:
		W, err := conversion.ToDense(msg.Weights)
		if err != nil {
			context.Respond(&messages.EvaluationFailed{Reason: err.Error()})
			return
		}
		X, err := conversion.ToDense(msg.Features)
		if err != nil {
			context.Respond(&messages.EvaluationFailed{Reason: err.Error()})
			return
		}
		loss, dW, err := softmax.Loss(W, X, msg.Labels, msg.Reg)
		if err != nil {
			context.Respond(&messages.EvaluationFailed{Reason: err.Error()})
			return
		}
		context.Respond(&messages.LossGradient{Loss: loss, Gradient: conversion.FromDense(dW)})

	case *actor.Stopped:
		log.Println("Evaluation Actor stopped:", context.Self().String())
	}
}
