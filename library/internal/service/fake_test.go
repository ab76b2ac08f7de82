package service_test

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Astemirdum/library-management/library/internal/errs"
	"github.com/Astemirdum/library-management/library/internal/model"
	"github.com/Astemirdum/library-management/library/internal/repository"
	"github.com/Astemirdum/library-management/pkg/kafka"
)

// fakeRepo is an in-memory ledger. Transactions are serialized and rolled back on error.
type fakeRepo struct {
	tx   sync.Mutex
	mu   sync.Mutex
	next int64

	users   map[int64]model.User
	books   map[int64]model.Book
	borrows map[int64]model.Borrow
}

var _ repository.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:   make(map[int64]model.User),
		books:   make(map[int64]model.Book),
		borrows: make(map[int64]model.Borrow),
	}
}

func (f *fakeRepo) id() int64 {
	f.next++
	return f.next
}

func (f *fakeRepo) addUser(u model.User) model.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	u.ID = f.id()
	f.users[u.ID] = u
	return u
}

func (f *fakeRepo) addBook(b model.Book) model.Book {
	f.mu.Lock()
	defer f.mu.Unlock()
	b.ID = f.id()
	f.books[b.ID] = b
	return b
}

func (f *fakeRepo) borrow(id int64) model.Borrow {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.borrows[id]
}

func (f *fakeRepo) book(id int64) model.Book {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.books[id]
}

func (f *fakeRepo) RunInTx(ctx context.Context, fn func(ctx context.Context, tx repository.Repository) error) error {
	f.tx.Lock()
	defer f.tx.Unlock()

	f.mu.Lock()
	users, books, borrows := cloneMap(f.users), cloneMap(f.books), cloneMap(f.borrows)
	f.mu.Unlock()

	if err := fn(ctx, f); err != nil {
		f.mu.Lock()
		f.users, f.books, f.borrows = users, books, borrows
		f.mu.Unlock()
		return err
	}
	return nil
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (f *fakeRepo) GetUser(_ context.Context, id int64) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return model.User{}, errs.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeRepo) GetUserByUsername(_ context.Context, username string) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return model.User{}, errs.ErrUserNotFound
}

func (f *fakeRepo) LockUser(ctx context.Context, id int64) (model.User, error) {
	return f.GetUser(ctx, id)
}

func (f *fakeRepo) ListUsers(_ context.Context, filter model.UserFilter, pager model.Pager) (model.ListUsers, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var users []model.User
	for _, u := range f.users {
		if filter.Username != "" && !strings.Contains(u.Username, filter.Username) {
			continue
		}
		if filter.IsActive != nil && u.IsActive != *filter.IsActive {
			continue
		}
		users = append(users, u)
	}
	return model.ListUsers{Records: users, Paging: pager.Paging(len(users))}, nil
}

func (f *fakeRepo) CreateUser(_ context.Context, user model.User) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == user.Username {
			return model.User{}, errs.ErrDuplicateUsername
		}
		if u.Email == user.Email {
			return model.User{}, errs.ErrDuplicateEmail
		}
	}
	user.ID = f.id()
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeRepo) UpdateUser(_ context.Context, id int64, patch model.UserUpdate) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(patch.Apply()) == 0 {
		return model.User{}, errs.ErrNothingToUpdate
	}
	u, ok := f.users[id]
	if !ok {
		return model.User{}, errs.ErrUserNotFound
	}
	if patch.Username != nil {
		u.Username = *patch.Username
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.FullName != nil {
		u.FullName = patch.FullName
	}
	if patch.Phone != nil {
		u.Phone = patch.Phone
	}
	if patch.IsActive != nil {
		u.IsActive = *patch.IsActive
	}
	if patch.IsAdmin != nil {
		u.IsAdmin = *patch.IsAdmin
	}
	f.users[id] = u
	return u, nil
}

func (f *fakeRepo) UpdatePassword(_ context.Context, id int64, hashedPassword string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return errs.ErrUserNotFound
	}
	u.HashedPassword = hashedPassword
	f.users[id] = u
	return nil
}

func (f *fakeRepo) ToggleUserActive(_ context.Context, id int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return false, errs.ErrUserNotFound
	}
	u.IsActive = !u.IsActive
	f.users[id] = u
	return u.IsActive, nil
}

func (f *fakeRepo) DeleteUser(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[id]; !ok {
		return errs.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeRepo) CountUsers(_ context.Context, ids []int64) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, id := range ids {
		if _, ok := f.users[id]; ok {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) DeleteUsers(_ context.Context, ids []int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range ids {
		delete(f.users, id)
	}
	return nil
}

func (f *fakeRepo) GetBook(_ context.Context, id int64) (model.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.books[id]
	if !ok {
		return model.Book{}, errs.ErrBookNotFound
	}
	return b, nil
}

func (f *fakeRepo) ListBooks(_ context.Context, _ model.BookFilter, pager model.Pager) (model.ListBooks, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var books []model.Book
	for _, b := range f.books {
		books = append(books, b)
	}
	return model.ListBooks{Records: books, Paging: pager.Paging(len(books))}, nil
}

func (f *fakeRepo) CreateBook(_ context.Context, req model.BookCreate) (model.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.books {
		if b.ISBN == req.ISBN {
			return model.Book{}, errs.ErrDuplicateISBN
		}
	}
	b := model.Book{
		ID:            f.id(),
		Title:         req.Title,
		Author:        req.Author,
		ISBN:          req.ISBN,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
	}
	f.books[b.ID] = b
	return b, nil
}

func (f *fakeRepo) UpdateBook(_ context.Context, id int64, patch model.BookUpdate) (model.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(patch.Apply()) == 0 {
		return model.Book{}, errs.ErrNothingToUpdate
	}
	b, ok := f.books[id]
	if !ok {
		return model.Book{}, errs.ErrBookNotFound
	}
	if patch.Title != nil {
		b.Title = *patch.Title
	}
	if patch.StockQuantity != nil {
		b.StockQuantity = *patch.StockQuantity
	}
	f.books[id] = b
	return b, nil
}

func (f *fakeRepo) DeleteBook(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.books[id]; !ok {
		return errs.ErrBookNotFound
	}
	delete(f.books, id)
	return nil
}

func (f *fakeRepo) CountBooks(_ context.Context, ids []int64) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, id := range ids {
		if _, ok := f.books[id]; ok {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) DeleteBooks(_ context.Context, ids []int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range ids {
		delete(f.books, id)
	}
	return nil
}

func (f *fakeRepo) Categories(context.Context) ([]string, error) { return nil, nil }

func (f *fakeRepo) Authors(context.Context) ([]string, error) { return nil, nil }

func (f *fakeRepo) AdjustStock(_ context.Context, id int64, delta int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.books[id]
	if !ok {
		return errs.ErrBookNotFound
	}
	if b.StockQuantity+delta < 0 {
		return errs.ErrOutOfStock
	}
	b.StockQuantity += delta
	f.books[id] = b
	return nil
}

func (f *fakeRepo) CreateBorrow(_ context.Context, b model.Borrow) (model.Borrow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.borrows {
		if existing.UserID == b.UserID && existing.BookID == b.BookID && existing.Status == model.BorrowStatusBorrowed {
			return model.Borrow{}, errs.ErrAlreadyBorrowed
		}
	}
	b.ID = f.id()
	b.Status = model.BorrowStatusBorrowed
	f.borrows[b.ID] = b
	return b, nil
}

func (f *fakeRepo) LockActiveBorrow(_ context.Context, id int64) (model.Borrow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.borrows[id]
	if !ok || b.Status != model.BorrowStatusBorrowed {
		return model.Borrow{}, errs.ErrBorrowNotFound
	}
	return b, nil
}

func (f *fakeRepo) HasActiveBorrow(_ context.Context, userID, bookID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.borrows {
		if b.UserID == userID && b.BookID == bookID && b.Status == model.BorrowStatusBorrowed {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) CountActiveBorrows(_ context.Context, userID int64) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, b := range f.borrows {
		if b.UserID == userID && b.Status == model.BorrowStatusBorrowed {
			n++
		}
	}
	return n, nil
}

func appendNote(notes *string, note string) *string {
	s := ""
	if notes != nil {
		s = *notes
	}
	s += note
	if s == "" {
		return nil
	}
	return &s
}

func (f *fakeRepo) CompleteReturn(_ context.Context, id int64, returnedAt time.Time, fine float64, note string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.borrows[id]
	if !ok || b.Status != model.BorrowStatusBorrowed {
		return errs.ErrBorrowNotFound
	}
	b.Status = model.BorrowStatusReturned
	b.ReturnDate = &returnedAt
	b.FineAmount = fine
	b.Notes = appendNote(b.Notes, note)
	f.borrows[id] = b
	return nil
}

func (f *fakeRepo) ExtendDueDate(_ context.Context, id int64, dueDate time.Time, note string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.borrows[id]
	if !ok || b.Status != model.BorrowStatusBorrowed {
		return errs.ErrBorrowNotFound
	}
	b.DueDate = dueDate
	b.RenewalCount++
	b.Notes = appendNote(b.Notes, note)
	f.borrows[id] = b
	return nil
}

func (f *fakeRepo) details(b model.Borrow) model.BorrowDetails {
	u, bk := f.users[b.UserID], f.books[b.BookID]
	return model.BorrowDetails{
		ID:           b.ID,
		UserID:       b.UserID,
		UserName:     u.Username,
		UserEmail:    u.Email,
		BookID:       b.BookID,
		BookTitle:    bk.Title,
		BookAuthor:   bk.Author,
		BookISBN:     bk.ISBN,
		BorrowDate:   b.BorrowDate,
		DueDate:      b.DueDate,
		ReturnDate:   b.ReturnDate,
		Status:       b.Status,
		RenewalCount: b.RenewalCount,
		FineAmount:   b.FineAmount,
		Notes:        b.Notes,
	}
}

func (f *fakeRepo) GetBorrowDetails(_ context.Context, id int64) (model.BorrowDetails, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.borrows[id]
	if !ok {
		return model.BorrowDetails{}, errs.ErrBorrowNotFound
	}
	return f.details(b), nil
}

func (f *fakeRepo) ListBorrows(_ context.Context, filter model.BorrowFilter, pager model.Pager) (model.ListBorrows, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	records := []model.BorrowDetails{}
	for _, b := range f.borrows {
		if filter.UserID != nil && b.UserID != *filter.UserID {
			continue
		}
		if filter.BookID != nil && b.BookID != *filter.BookID {
			continue
		}
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if filter.OverdueOnly && !b.IsOverdue(filter.Now) {
			continue
		}
		records = append(records, f.details(b))
	}
	return model.ListBorrows{Records: records, Paging: pager.Paging(len(records))}, nil
}

func (f *fakeRepo) ListUserBorrows(ctx context.Context, userID int64, status model.BorrowStatus) ([]model.BorrowDetails, error) {
	list, err := f.ListBorrows(ctx, model.BorrowFilter{UserID: &userID, Status: status}, model.NewPager(1, model.MaxPageSize))
	return list.Records, err
}

func (f *fakeRepo) ListOverdue(_ context.Context, now time.Time) ([]model.OverdueBorrow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.OverdueBorrow
	for _, b := range f.borrows {
		if !b.IsOverdue(now) {
			continue
		}
		out = append(out, model.OverdueBorrow{
			ID:       b.ID,
			UserID:   b.UserID,
			Username: f.users[b.UserID].Username,
			BookID:   b.BookID,
			DueDate:  b.DueDate,
		})
	}
	return out, nil
}

func (f *fakeRepo) BorrowStats(_ context.Context, now, dayStart, dayEnd time.Time) (model.BorrowStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var s model.BorrowStats
	for _, b := range f.borrows {
		if b.Status == model.BorrowStatusBorrowed {
			s.CurrentBorrows++
		}
		if b.IsOverdue(now) {
			s.OverdueBorrows++
		}
		if !b.BorrowDate.Before(dayStart) && b.BorrowDate.Before(dayEnd) {
			s.TodayBorrows++
		}
		if b.ReturnDate != nil && !b.ReturnDate.Before(dayStart) && b.ReturnDate.Before(dayEnd) {
			s.TodayReturns++
		}
		s.TotalFines += b.FineAmount
	}
	return s, nil
}

func (f *fakeRepo) UserStats(_ context.Context, userID int64, now time.Time) (model.UserStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var s model.UserStats
	for _, b := range f.borrows {
		if b.UserID != userID {
			continue
		}
		s.TotalBorrows++
		if b.Status == model.BorrowStatusBorrowed {
			s.ActiveBorrows++
		}
		if b.IsOverdue(now) {
			s.OverdueBorrows++
		}
	}
	return s, nil
}

func (f *fakeRepo) SiteStatistics(ctx context.Context, now time.Time) (model.SiteStatistics, error) {
	f.mu.Lock()
	users, books, borrows := len(f.users), len(f.books), len(f.borrows)
	f.mu.Unlock()
	stats, err := f.BorrowStats(ctx, now, now, now)
	if err != nil {
		return model.SiteStatistics{}, err
	}
	return model.SiteStatistics{
		TotalUsers:     users,
		TotalBooks:     books,
		TotalBorrows:   borrows,
		ActiveBorrows:  stats.CurrentBorrows,
		OverdueBorrows: stats.OverdueBorrows,
	}, nil
}

// clock is a settable time source.
type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []kafka.BorrowEvent
}

func (p *recordingPublisher) Publish(_ context.Context, e kafka.BorrowEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []kafka.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]kafka.EventType, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}
