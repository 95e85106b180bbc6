package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	echoapi "github.com/trezcool/darasa/api/echo"
	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/assignment"
	"github.com/trezcool/darasa/core/attendance"
	"github.com/trezcool/darasa/core/class"
	"github.com/trezcool/darasa/core/grade"
	"github.com/trezcool/darasa/core/notification"
	"github.com/trezcool/darasa/core/student"
	emailsvc "github.com/trezcool/darasa/services/email"
	logsvc "github.com/trezcool/darasa/services/logger"
	"github.com/trezcool/darasa/storage/database"
	inmemdb "github.com/trezcool/darasa/storage/database/inmem"
	sqlxrepos "github.com/trezcool/darasa/storage/database/sqlx"
)

func main() {
	std := log.New(os.Stdout, "DARASA : ", log.LstdFlags|log.Lshortfile)
	if err := run(std); err != nil {
		std.Fatalf("%+v", err)
	}
}

func run(std *log.Logger) error {
	conf, err := core.NewConfig()
	if err != nil {
		return errors.Wrap(err, "loading config")
	}

	logger := logsvc.NewRollbarLogger(std, conf)
	logger.Enable(!conf.Debug)

	// set up repositories
	var (
		studentRepo    student.Repository
		classRepo      class.Repository
		gradeRepo      grade.Repository
		attendanceRepo attendance.Repository
		assignmentRepo assignment.Repository
		prefRepo       notification.PreferenceRepository
		logRepo        notification.LogRepository
	)
	if conf.Debug {
		db, err := inmemdb.Open()
		if err != nil {
			return errors.Wrap(err, "opening in-memory database")
		}
		studentRepo = inmemdb.NewStudentRepository(db)
		classRepo = inmemdb.NewClassRepository(db)
		gradeRepo = inmemdb.NewGradeRepository(db)
		attendanceRepo = inmemdb.NewAttendanceRepository(db)
		assignmentRepo = inmemdb.NewAssignmentRepository(db)
		prefRepo = inmemdb.NewPreferenceRepository(db)
		logRepo = inmemdb.NewEmailLogRepository(db)
	} else {
		if err := database.CreateIfNotExist(conf); err != nil {
			return errors.Wrap(err, "setting up database")
		}
		db, err := database.Open(conf)
		if err != nil {
			return errors.Wrap(err, "opening database")
		}
		defer func() { _ = db.Close() }()
		if err := database.Migrate(db); err != nil {
			return errors.Wrap(err, "migrating database")
		}
		studentRepo = sqlxrepos.NewStudentRepository(db)
		classRepo = sqlxrepos.NewClassRepository(db)
		gradeRepo = sqlxrepos.NewGradeRepository(db)
		attendanceRepo = sqlxrepos.NewAttendanceRepository(db)
		assignmentRepo = sqlxrepos.NewAssignmentRepository(db)
		prefRepo = sqlxrepos.NewPreferenceRepository(db)
		logRepo = sqlxrepos.NewEmailLogRepository(db)
	}

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf)
	}
	notifSvc := notification.NewService(conf, prefRepo, logRepo, studentRepo, mailSvc, logger)
	studentSvc := student.NewService(studentRepo)
	classSvc := class.NewService(classRepo)
	gradeSvc := grade.NewService(gradeRepo, notifSvc, logger)
	attendanceSvc := attendance.NewService(attendanceRepo, notifSvc, logger)
	assignmentSvc := assignment.NewService(assignmentRepo, notifSvc, logger)

	// start API server
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	app := echoapi.NewServer(&echoapi.Options{
		Address:        conf.ServerAddress(),
		Conf:           conf,
		Logger:         logger,
		StudentSvc:     studentSvc,
		ClassSvc:       classSvc,
		GradeSvc:       gradeSvc,
		AttendanceSvc:  attendanceSvc,
		AssignmentSvc:  assignmentSvc,
		NotifSvc:       notifSvc,
		SignalShutdown: func() { shutdown <- syscall.SIGTERM },
	})

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("server listening on " + conf.ServerAddress())
		serverErrors <- app.Start()
	}()

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return errors.Wrap(err, "server error")
		}
	case sig := <-shutdown:
		logger.Info("shutdown started: " + sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			return errors.Wrap(err, "stopping server")
		}
		logger.Info("shutdown complete")
	}
	return nil
}
