// Package mailer assembles compiled email content into a nested multipart
// message and delivers it over SMTP.
//
// The Assembler owns the structural work: the alternative part (plain then
// HTML), the related part carrying cid-referenced inline images, and the
// mixed part carrying attachments. The Sender interface owns delivery;
// SMTPSender implements it against a fixed authenticated relay.
//
// File reads and network calls happen only here, never in the compiler, so
// callers can keep compilation on a latency-sensitive path and push
// assembly and delivery into a background task.
package mailer
