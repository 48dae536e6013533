package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"university_billing/internal/domain/entities"
	"university_billing/internal/usecase/interfaces"
	mock_interfaces "university_billing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func sampleStudent() entities.Student {
	return entities.Student{
		StudentNumber: "S-100",
		FirstName:     "Grace",
		LastName:      "Hopper",
		Email:         " Grace.Hopper@Uni.edu ",
		PhoneNumber:   "+1 555 0100",
	}
}

func newStudentUseCase(repo *mock_interfaces.MockIStudentRepository) *StudentUseCase {
	uc := NewStudentUseCase(repo)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func TestStudentUseCase_Create(t *testing.T) {
	t.Run("creates enabled student with fee not paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStudentRepository(ctrl)
		uc := newStudentUseCase(repo)

		repo.EXPECT().FindByEmailOrNumber(gomock.Any(), "grace.hopper@uni.edu", "S-100").Return(entities.Student{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.Student) (entities.Student, error) {
			return s, nil
		})

		got, err := uc.Create(context.Background(), sampleStudent())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID == "" || !got.Enabled || got.InscriptionFeeStatus != entities.InscriptionFeeNotPaid {
			t.Fatalf("unexpected student: %+v", got)
		}
		if got.Email != "grace.hopper@uni.edu" || !got.CreatedAt.Equal(fixedNow) {
			t.Fatalf("unexpected student: %+v", got)
		}
	})

	t.Run("duplicate email or number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStudentRepository(ctrl)
		uc := newStudentUseCase(repo)

		repo.EXPECT().FindByEmailOrNumber(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Student{ID: "other"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.Create(context.Background(), sampleStudent())
		if !errors.Is(err, ErrStudentAlreadyExists) {
			t.Fatalf("expected ErrStudentAlreadyExists, got %v", err)
		}
	})

	invalid := map[string]func(*entities.Student){
		"missing number": func(s *entities.Student) { s.StudentNumber = "" },
		"missing name":   func(s *entities.Student) { s.LastName = " " },
		"missing phone":  func(s *entities.Student) { s.PhoneNumber = "" },
		"bad email":      func(s *entities.Student) { s.Email = "not-an-email" },
		"display email":  func(s *entities.Student) { s.Email = "Grace <g@uni.edu>" },
		"bad fee status": func(s *entities.Student) { s.InscriptionFeeStatus = "MAYBE" },
	}
	for name, mutate := range invalid {
		t.Run(name, func(t *testing.T) {
			s := sampleStudent()
			mutate(&s)
			_, err := newStudentUseCase(nil).Create(context.Background(), s)
			if !errors.Is(err, ErrInvalidStudent) {
				t.Fatalf("expected ErrInvalidStudent, got %v", err)
			}
		})
	}
}

func TestStudentUseCase_Update(t *testing.T) {
	existing := entities.Student{
		ID: "st-1", StudentNumber: "S-100", Email: "grace.hopper@uni.edu",
		InscriptionFeeStatus: entities.InscriptionFeePaid, CreatedAt: fixedNow.AddDate(-1, 0, 0),
		Courses: []entities.Course{{CourseID: "CS-101", Credits: 4}},
		Grades:  []entities.Grade{{CourseID: "CS-101", Grade: 9.5, Semester: "2026-1"}},
	}

	t.Run("keeps identity and fee status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStudentRepository(ctrl)
		uc := newStudentUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "st-1").Return(existing, nil)
		repo.EXPECT().FindByEmailOrNumber(gomock.Any(), gomock.Any(), gomock.Any()).Return(existing, nil)
		repo.EXPECT().Replace(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.Student) (entities.Student, error) {
			return s, nil
		})

		in := sampleStudent()
		in.Enabled = true
		got, err := uc.Update(context.Background(), "st-1", in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "st-1" || !got.CreatedAt.Equal(existing.CreatedAt) || got.InscriptionFeeStatus != entities.InscriptionFeePaid {
			t.Fatalf("unexpected student: %+v", got)
		}
		if len(got.Courses) != 1 || len(got.Grades) != 1 {
			t.Fatalf("courses and grades must survive an update: %+v", got)
		}
	})

	t.Run("clash with another student", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStudentRepository(ctrl)
		uc := newStudentUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "st-1").Return(existing, nil)
		repo.EXPECT().FindByEmailOrNumber(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Student{ID: "st-2"}, nil)

		_, err := uc.Update(context.Background(), "st-1", sampleStudent())
		if !errors.Is(err, ErrStudentAlreadyExists) {
			t.Fatalf("expected ErrStudentAlreadyExists, got %v", err)
		}
	})

	t.Run("missing student", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStudentRepository(ctrl)
		uc := newStudentUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "st-9").Return(entities.Student{}, nil)
		_, err := uc.Update(context.Background(), "st-9", sampleStudent())
		if !errors.Is(err, ErrStudentNotFound) {
			t.Fatalf("expected ErrStudentNotFound, got %v", err)
		}
	})
}

func TestStudentUseCase_UpdateInscriptionFeeStatus(t *testing.T) {
	t.Run("normalizes status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStudentRepository(ctrl)
		uc := newStudentUseCase(repo)

		repo.EXPECT().UpdateInscriptionFeeStatus(gomock.Any(), "st-1", entities.InscriptionFeePaid).Return(entities.Student{ID: "st-1", InscriptionFeeStatus: entities.InscriptionFeePaid}, nil)
		got, err := uc.UpdateInscriptionFeeStatus(context.Background(), "st-1", " paid ")
		if err != nil || got.InscriptionFeeStatus != entities.InscriptionFeePaid {
			t.Fatalf("unexpected result: %+v %v", got, err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := newStudentUseCase(nil).UpdateInscriptionFeeStatus(context.Background(), "st-1", "LATE")
		if !errors.Is(err, ErrInvalidStudent) {
			t.Fatalf("expected ErrInvalidStudent, got %v", err)
		}
	})

	t.Run("missing student", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStudentRepository(ctrl)
		uc := newStudentUseCase(repo)

		repo.EXPECT().UpdateInscriptionFeeStatus(gomock.Any(), "st-1", entities.InscriptionFeeNotPaid).Return(entities.Student{}, nil)
		_, err := uc.UpdateInscriptionFeeStatus(context.Background(), "st-1", entities.InscriptionFeeNotPaid)
		if !errors.Is(err, ErrStudentNotFound) {
			t.Fatalf("expected ErrStudentNotFound, got %v", err)
		}
	})
}

func TestStudentUseCase_GetAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIStudentRepository(ctrl)
	uc := newStudentUseCase(repo)

	if _, err := uc.GetByID(context.Background(), ""); !errors.Is(err, ErrInvalidStudentRecord) {
		t.Fatalf("expected ErrInvalidStudentRecord, got %v", err)
	}

	repo.EXPECT().GetByID(gomock.Any(), "st-1").Return(entities.Student{}, nil)
	if _, err := uc.GetByID(context.Background(), "st-1"); !errors.Is(err, ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}

	repo.EXPECT().Delete(gomock.Any(), "st-1").Return(false, nil)
	if err := uc.Delete(context.Background(), "st-1"); !errors.Is(err, ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
	repo.EXPECT().Delete(gomock.Any(), "st-1").Return(true, nil)
	if err := uc.Delete(context.Background(), "st-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStudentUseCase_CreateConflictFromStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIStudentRepository(ctrl)
	uc := newStudentUseCase(repo)

	repo.EXPECT().FindByEmailOrNumber(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Student{}, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Student{}, interfaces.ErrConflict)

	_, err := uc.Create(context.Background(), sampleStudent())
	if !errors.Is(err, ErrStudentAlreadyExists) {
		t.Fatalf("expected ErrStudentAlreadyExists, got %v", err)
	}
}

func listedStudents() []entities.Student {
	return []entities.Student{
		{ID: "st-1", FirstName: "Ada", LastName: "Lovelace", Email: "ada@uni.edu", StudentNumber: "S-1", Enabled: true, InscriptionFeeStatus: entities.InscriptionFeePaid},
		{ID: "st-2", FirstName: "Alan", LastName: "Turing", Email: "alan@uni.edu", StudentNumber: "S-2", Enabled: true, InscriptionFeeStatus: entities.InscriptionFeeNotPaid},
		{ID: "st-3", FirstName: "Grace", LastName: "Hopper", Email: "grace@uni.edu", StudentNumber: "S-3", Enabled: false, InscriptionFeeStatus: entities.InscriptionFeeNotPaid},
	}
}

func TestStudentUseCase_List(t *testing.T) {
	disabled := false
	tests := []struct {
		name   string
		filter entities.StudentFilter
		ids    []string
		total  int
		pages  int
		limit  int
	}{
		{name: "defaults", filter: entities.StudentFilter{}, ids: []string{"st-1", "st-2", "st-3"}, total: 3, pages: 1, limit: DefaultStudentPageSize},
		{name: "by fee status", filter: entities.StudentFilter{InscriptionFeeStatus: " not_paid "}, ids: []string{"st-2", "st-3"}, total: 2, pages: 1, limit: DefaultStudentPageSize},
		{name: "by enabled", filter: entities.StudentFilter{Enabled: &disabled}, ids: []string{"st-3"}, total: 1, pages: 1, limit: DefaultStudentPageSize},
		{name: "by search", filter: entities.StudentFilter{Search: "TURING"}, ids: []string{"st-2"}, total: 1, pages: 1, limit: DefaultStudentPageSize},
		{name: "second page", filter: entities.StudentFilter{Page: 2, Limit: 2}, ids: []string{"st-3"}, total: 3, pages: 2, limit: 2},
		{name: "page past the end", filter: entities.StudentFilter{Page: 5, Limit: 2}, ids: []string{}, total: 3, pages: 2, limit: 2},
		{name: "limit capped", filter: entities.StudentFilter{Limit: 1000}, ids: []string{"st-1", "st-2", "st-3"}, total: 3, pages: 1, limit: MaxStudentPageSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIStudentRepository(ctrl)
			uc := newStudentUseCase(repo)

			repo.EXPECT().List(gomock.Any()).Return(listedStudents(), nil)
			page, err := uc.List(context.Background(), tt.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if page.Total != tt.total || page.Pages != tt.pages || page.Limit != tt.limit {
				t.Fatalf("unexpected page meta: %+v", page)
			}
			if len(page.Students) != len(tt.ids) {
				t.Fatalf("expected %v, got %+v", tt.ids, page.Students)
			}
			for i, id := range tt.ids {
				if page.Students[i].ID != id {
					t.Fatalf("expected %v, got %+v", tt.ids, page.Students)
				}
			}
		})
	}

	t.Run("invalid fee status", func(t *testing.T) {
		_, err := newStudentUseCase(nil).List(context.Background(), entities.StudentFilter{InscriptionFeeStatus: "LATE"})
		if !errors.Is(err, ErrInvalidStudent) {
			t.Fatalf("expected ErrInvalidStudent, got %v", err)
		}
	})
}

func TestStudentUseCase_Lookups(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIStudentRepository(ctrl)
	uc := newStudentUseCase(repo)

	repo.EXPECT().FindByEmailOrNumber(gomock.Any(), "", "S-1").Return(entities.Student{ID: "st-1"}, nil)
	if got, err := uc.GetByStudentNumber(context.Background(), " S-1 "); err != nil || got.ID != "st-1" {
		t.Fatalf("unexpected result: %+v %v", got, err)
	}

	repo.EXPECT().FindByEmailOrNumber(gomock.Any(), "ada@uni.edu", "").Return(entities.Student{}, nil)
	if _, err := uc.GetByEmail(context.Background(), "Ada@Uni.edu"); !errors.Is(err, ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}

	if _, err := uc.GetByStudentNumber(context.Background(), " "); !errors.Is(err, ErrInvalidStudent) {
		t.Fatalf("expected ErrInvalidStudent, got %v", err)
	}
	if _, err := uc.GetByEmail(context.Background(), ""); !errors.Is(err, ErrInvalidStudent) {
		t.Fatalf("expected ErrInvalidStudent, got %v", err)
	}
}

func TestStudentUseCase_Courses(t *testing.T) {
	enrolled := func() entities.Student {
		return entities.Student{ID: "st-1", Courses: []entities.Course{{CourseID: "CS-101", CourseName: "Programming", Credits: 4}}}
	}

	t.Run("adds a course", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStudentRepository(ctrl)
		uc := newStudentUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "st-1").Return(enrolled(), nil)
		repo.EXPECT().Replace(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.Student) (entities.Student, error) {
			return s, nil
		})
		got, err := uc.AddCourse(context.Background(), "st-1", entities.Course{CourseID: " MATH-201 ", Credits: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Courses) != 2 || got.Courses[1].CourseID != "MATH-201" || !got.UpdatedAt.Equal(fixedNow) {
			t.Fatalf("unexpected student: %+v", got)
		}
	})

	t.Run("same course twice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStudentRepository(ctrl)
		uc := newStudentUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "st-1").Return(enrolled(), nil)
		repo.EXPECT().Replace(gomock.Any(), gomock.Any()).Times(0)
		_, err := uc.AddCourse(context.Background(), "st-1", entities.Course{CourseID: "CS-101"})
		if !errors.Is(err, ErrCourseAlreadyAdded) {
			t.Fatalf("expected ErrCourseAlreadyAdded, got %v", err)
		}
	})

	t.Run("invalid course", func(t *testing.T) {
		uc := newStudentUseCase(nil)
		if _, err := uc.AddCourse(context.Background(), "st-1", entities.Course{}); !errors.Is(err, ErrInvalidCourse) {
			t.Fatalf("expected ErrInvalidCourse, got %v", err)
		}
		if _, err := uc.AddCourse(context.Background(), "st-1", entities.Course{CourseID: "X", Credits: -1}); !errors.Is(err, ErrInvalidCourse) {
			t.Fatalf("expected ErrInvalidCourse, got %v", err)
		}
	})

	t.Run("removes a course", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStudentRepository(ctrl)
		uc := newStudentUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "st-1").Return(enrolled(), nil)
		repo.EXPECT().Replace(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.Student) (entities.Student, error) {
			return s, nil
		})
		got, err := uc.RemoveCourse(context.Background(), "st-1", "CS-101")
		if err != nil || len(got.Courses) != 0 {
			t.Fatalf("unexpected result: %+v %v", got, err)
		}
	})

	t.Run("removing an unknown course writes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStudentRepository(ctrl)
		uc := newStudentUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "st-1").Return(enrolled(), nil)
		repo.EXPECT().Replace(gomock.Any(), gomock.Any()).Times(0)
		got, err := uc.RemoveCourse(context.Background(), "st-1", "BIO-1")
		if err != nil || len(got.Courses) != 1 {
			t.Fatalf("unexpected result: %+v %v", got, err)
		}
	})

	t.Run("student deleted before write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStudentRepository(ctrl)
		uc := newStudentUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "st-1").Return(enrolled(), nil)
		repo.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(entities.Student{}, nil)
		_, err := uc.RemoveCourse(context.Background(), "st-1", "CS-101")
		if !errors.Is(err, ErrStudentNotFound) {
			t.Fatalf("expected ErrStudentNotFound, got %v", err)
		}
	})
}

func TestStudentUseCase_AddGrade(t *testing.T) {
	t.Run("appends grade", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStudentRepository(ctrl)
		uc := newStudentUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "st-1").Return(entities.Student{ID: "st-1"}, nil)
		repo.EXPECT().Replace(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.Student) (entities.Student, error) {
			return s, nil
		})
		got, err := uc.AddGrade(context.Background(), "st-1", entities.Grade{CourseID: "CS-101", Grade: 8.75, Semester: " 2026-1 "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Grades) != 1 || got.Grades[0].Semester != "2026-1" || got.Grades[0].Grade != 8.75 {
			t.Fatalf("unexpected grades: %+v", got.Grades)
		}
	})

	invalid := map[string]entities.Grade{
		"missing course": {Grade: 7},
		"negative grade": {CourseID: "CS-101", Grade: -1},
	}
	for name, g := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := newStudentUseCase(nil).AddGrade(context.Background(), "st-1", g)
			if !errors.Is(err, ErrInvalidGrade) {
				t.Fatalf("expected ErrInvalidGrade, got %v", err)
			}
		})
	}
}
